package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/charmbracelet/log"

	"archstyles/pkg/cache"
)

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	renderStatus(w, r, http.StatusOK, component)
}

func renderStatus(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		http.Error(w, "failed to render", http.StatusInternalServerError)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Pages renders components through a cache. Only successful renders of
// known pages are stored, so the key space stays bounded by the catalog.
type Pages struct {
	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
}

// NewPages wraps c. A nil cache disables caching.
func NewPages(c cache.Cache, ttl time.Duration, logger *log.Logger) *Pages {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Pages{cache: c, ttl: ttl, logger: logger}
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, key string, component templ.Component) {
	ctx := r.Context()
	body, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		p.logger.Warn("page cache get", "key", key, "err", err)
	}
	if ok {
		w.Header().Set("X-Cache", "hit")
		writeHTML(w, http.StatusOK, body)
		return
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		p.logger.Error("render", "key", key, "err", err)
		http.Error(w, "failed to render", http.StatusInternalServerError)
		return
	}
	if err := p.cache.Set(ctx, key, buf.Bytes(), p.ttl); err != nil {
		p.logger.Warn("page cache set", "key", key, "err", err)
	}
	w.Header().Set("X-Cache", "miss")
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func pageKey(path, feature string, fragment bool) string {
	kind := "page"
	if fragment {
		kind = "fragment"
	}
	return kind + ":" + path + "?feature=" + feature
}
