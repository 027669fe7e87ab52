package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"archstyles/internal/site"
	"archstyles/internal/styles"
	"archstyles/internal/viewmodel"
	"archstyles/views/pages"
)

type HomeHandler struct {
	catalog *styles.Catalog
	pages   *Pages
	links   site.Links
}

func NewHomeHandler(catalog *styles.Catalog, p *Pages) *HomeHandler {
	return &HomeHandler{catalog: catalog, pages: p, links: site.ServerLinks{}}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.NotFound(h.notFound)
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	data := site.IndexPage(h.catalog, h.links)
	h.pages.render(w, r, pageKey("/", "", false), pages.IndexPage(site.Layout(data.Title, h.links), data))
}

func (h *HomeHandler) notFound(w http.ResponseWriter, r *http.Request) {
	notFound(w, r, h.links, "There is no page at this address.")
}

func notFound(w http.ResponseWriter, r *http.Request, links site.Links, message string) {
	data := viewmodel.NotFoundPage{
		Title:    "Page not found",
		Message:  message,
		HomeHref: links.Index(),
	}
	renderStatus(w, r, http.StatusNotFound, pages.NotFoundPage(site.Layout(data.Title, links), data))
}
