package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"archstyles/internal/site"
	"archstyles/internal/styles"
	"archstyles/views/pages"
)

type StyleHandler struct {
	catalog *styles.Catalog
	pages   *Pages
	links   site.Links
}

func NewStyleHandler(catalog *styles.Catalog, p *Pages) *StyleHandler {
	return &StyleHandler{catalog: catalog, pages: p, links: site.ServerLinks{}}
}

func (h *StyleHandler) RegisterRoutes(r chi.Router) {
	r.Get("/styles/{slug}", h.stylePage)
	r.Get("/styles/{slug}/explorer", h.explorer)
}

func (h *StyleHandler) stylePage(w http.ResponseWriter, r *http.Request) {
	style, panel, ok := h.lookup(w, r)
	if !ok {
		return
	}
	data := site.StylePage(style, panel, h.links)
	key := pageKey(style.Path(), r.URL.Query().Get("feature"), false)
	h.pages.render(w, r, key, pages.StylePage(site.Layout(data.Title, h.links), data))
}

// explorer serves the diagram and panel swapped in by htmx. A browser that
// lands here directly is sent to the equivalent page.
func (h *StyleHandler) explorer(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Vary", "HX-Request")
	style, panel, ok := h.lookup(w, r)
	if !ok {
		return
	}
	feature := r.URL.Query().Get("feature")
	if r.Header.Get("Hx-Request") != "true" {
		http.Redirect(w, r, h.links.Style(style.Slug, styles.FeatureID(feature)), http.StatusFound)
		return
	}
	data := site.Explorer(style, panel, h.links)
	h.pages.render(w, r, pageKey(style.Path(), feature, true), pages.ExplorerFragment(data))
}

func (h *StyleHandler) lookup(w http.ResponseWriter, r *http.Request) (*styles.Style, site.Panel, bool) {
	style, err := h.catalog.BySlug(chi.URLParam(r, "slug"))
	if err != nil {
		notFound(w, r, h.links, "There is no architectural style at this address.")
		return nil, site.Panel{}, false
	}
	panel, err := site.Selection(style, r.URL.Query().Get("feature"))
	switch {
	case errors.Is(err, styles.ErrUnknownFeature):
		notFound(w, r, h.links, "The "+style.Name+" page has no feature by that name.")
		return nil, site.Panel{}, false
	case err != nil:
		http.Error(w, "failed to build page", http.StatusInternalServerError)
		return nil, site.Panel{}, false
	}
	return style, panel, true
}
