// Package export writes the whole site as static HTML files.
//
// Every selection state is its own page: styles/{slug}/index.html has
// nothing selected and styles/{slug}/{feature}/index.html has that feature
// selected, so the toggle works from any static file host without a server.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/a-h/templ"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"archstyles/internal/site"
	"archstyles/internal/styles"
	"archstyles/internal/viewmodel"
	"archstyles/static"
	"archstyles/views/pages"
)

// Options control an export.
type Options struct {
	// Base is the URL path prefix the site will be served under.
	Base string
	// Concurrency bounds parallel renders; zero means GOMAXPROCS.
	Concurrency int
	Logger      *log.Logger
}

// Report lists what an export wrote, relative to the output directory.
type Report struct {
	Files []string
}

type job struct {
	path      string
	component templ.Component
}

// Site renders every page of catalog into dir.
func Site(ctx context.Context, dir string, catalog *styles.Catalog, opts Options) (*Report, error) {
	if catalog == nil {
		catalog = styles.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	jobs, err := plan(catalog, site.StaticLinks{Base: opts.Base})
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		report Report
	)
	record := func(path string) {
		mu.Lock()
		report.Files = append(report.Files, path)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := j.component.Render(gctx, &buf); err != nil {
				return fmt.Errorf("render %s: %w", j.path, err)
			}
			if err := writeFile(dir, j.path, buf.Bytes()); err != nil {
				return err
			}
			logger.Debug("wrote page", "path", j.path)
			record(j.path)
			return nil
		})
	}
	g.Go(func() error {
		if err := copyStatic(dir); err != nil {
			return err
		}
		record(filepath.ToSlash(filepath.Join("static", static.Stylesheet)))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(report.Files)
	logger.Info("exported site", "dir", dir, "files", len(report.Files))
	return &report, nil
}

// plan lists every page and the file it goes to.
func plan(catalog *styles.Catalog, links site.Links) ([]job, error) {
	index := site.IndexPage(catalog, links)
	jobs := []job{
		{"index.html", pages.IndexPage(site.Layout(index.Title, links), index)},
		{"404.html", pages.NotFoundPage(site.Layout("Page not found", links), viewmodel.NotFoundPage{
			Title:    "Page not found",
			Message:  "There is no page at this address.",
			HomeHref: links.Index(),
		})},
	}

	for _, s := range catalog.All() {
		panel, err := s.Panel()
		if err != nil {
			return nil, err
		}
		states := append([]styles.FeatureID{""}, panel.Keys()...)
		for _, id := range states {
			selected := panel
			if id != "" {
				selected, _ = panel.Select(id)
			}
			data := site.StylePage(s, selected, links)
			jobs = append(jobs, job{
				path:      pagePath(s.Slug, id),
				component: pages.StylePage(site.Layout(data.Title, links), data),
			})
		}
	}
	return jobs, nil
}

func pagePath(slug string, feature styles.FeatureID) string {
	if feature == "" {
		return "styles/" + slug + "/index.html"
	}
	return "styles/" + slug + "/" + string(feature) + "/index.html"
}

func writeFile(dir, rel string, data []byte) error {
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}

func copyStatic(dir string) error {
	data, err := fs.ReadFile(static.FS, static.Stylesheet)
	if err != nil {
		return fmt.Errorf("read embedded %s: %w", static.Stylesheet, err)
	}
	return writeFile(dir, "static/"+static.Stylesheet, data)
}
