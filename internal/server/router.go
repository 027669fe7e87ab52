package server

import (
	"mime"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"archstyles/internal/handlers"
	"archstyles/internal/styles"
	"archstyles/pkg/cache"
	"archstyles/static"
)

// Deps are the collaborators of the router.
type Deps struct {
	Catalog  *styles.Catalog
	Cache    cache.Cache
	CacheTTL time.Duration
	Logger   *log.Logger
	// RequestTimeout bounds each request; zero means 15s.
	RequestTimeout time.Duration
}

// NewRouter builds the site's HTTP handler.
func NewRouter(d Deps) http.Handler {
	_ = mime.AddExtensionType(".css", "text/css")

	if d.Catalog == nil {
		d.Catalog = styles.Default()
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 15 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  d.Logger.StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel}),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(d.RequestTimeout))
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Compress(5))
	r.Use(middleware.GetHead)

	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(static.FS))))
	r.Get("/healthz", healthz)

	pages := handlers.NewPages(d.Cache, d.CacheTTL, d.Logger)
	homeHandler := handlers.NewHomeHandler(d.Catalog, pages)
	styleHandler := handlers.NewStyleHandler(d.Catalog, pages)

	homeHandler.RegisterRoutes(r)
	styleHandler.RegisterRoutes(r)

	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
