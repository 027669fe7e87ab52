package handlers

import (
	"html"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"archstyles/internal/styles"
	"archstyles/pkg/cache"
)

func newTestRouter(t *testing.T, c cache.Cache) http.Handler {
	t.Helper()
	p := NewPages(c, 0, log.New(&strings.Builder{}))
	r := chi.NewRouter()
	NewHomeHandler(styles.Default(), p).RegisterRoutes(r)
	NewStyleHandler(styles.Default(), p).RegisterRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string, hx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if hx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

var regionHref = func(id string) *regexp.Regexp {
	return regexp.MustCompile(`data-feature="` + regexp.QuoteMeta(id) + `"><a href="([^"]*)"`)
}

func toggleTarget(t *testing.T, body, id string) string {
	t.Helper()
	m := regionHref(id).FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("no region %q in body", id)
	}
	return html.UnescapeString(m[1])
}

func hasPanel(body string) bool {
	return strings.Contains(body, `class="feature-panel"`)
}

func TestIndexListsSevenStyles(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := get(t, h, "/", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if got := strings.Count(body, `class="card"`); got != 7 {
		t.Fatalf("cards = %d, want 7", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}

	for _, s := range styles.Default().All() {
		if !strings.Contains(body, `href="`+s.Path()+`"`) {
			t.Errorf("index missing link to %s", s.Path())
		}
		page := get(t, h, s.Path(), false)
		if page.Code != http.StatusOK {
			t.Errorf("%s: status = %d", s.Path(), page.Code)
			continue
		}
		if !strings.Contains(page.Body.String(), html.EscapeString(s.Title())) {
			t.Errorf("%s: title missing", s.Path())
		}
		if hasPanel(page.Body.String()) {
			t.Errorf("%s: panel visible with nothing selected", s.Path())
		}
	}
}

func TestEveryFeatureShowsItsDescription(t *testing.T) {
	h := newTestRouter(t, nil)
	for _, s := range styles.Default().All() {
		for _, f := range s.Features() {
			target := s.Path() + "?feature=" + string(f.ID)
			rec := get(t, h, target, false)
			if rec.Code != http.StatusOK {
				t.Errorf("%s: status = %d", target, rec.Code)
				continue
			}
			body := rec.Body.String()
			if !hasPanel(body) {
				t.Errorf("%s: panel missing", target)
			}
			if !strings.Contains(body, html.EscapeString(f.Description)) {
				t.Errorf("%s: description missing", target)
			}
			if got := strings.Count(body, `class="feature-panel"`); got != 1 {
				t.Errorf("%s: %d panels", target, got)
			}
		}
	}
}

func TestToggleTwiceClearsSelection(t *testing.T) {
	h := newTestRouter(t, nil)
	for _, s := range styles.Default().All() {
		for _, f := range s.Features() {
			start := get(t, h, s.Path(), false).Body.String()
			selected := toggleTarget(t, start, string(f.ID))

			body := get(t, h, selected, false).Body.String()
			if !hasPanel(body) {
				t.Fatalf("%s: click on %s did not open the panel", s.Slug, f.ID)
			}
			cleared := toggleTarget(t, body, string(f.ID))
			if cleared != s.Path() {
				t.Errorf("%s: second click on %s goes to %q, want %q", s.Slug, f.ID, cleared, s.Path())
			}
			if hasPanel(get(t, h, cleared, false).Body.String()) {
				t.Errorf("%s: panel still visible after second click on %s", s.Slug, f.ID)
			}
		}
	}
}

func TestSelectingAnotherFeatureReplaces(t *testing.T) {
	h := newTestRouter(t, nil)
	for _, s := range styles.Default().All() {
		features := s.Features()
		a, b := features[0], features[1]

		body := get(t, h, s.Path()+"?feature="+string(a.ID), false).Body.String()
		next := toggleTarget(t, body, string(b.ID))
		body = get(t, h, next, false).Body.String()

		if !strings.Contains(body, html.EscapeString(b.Description)) {
			t.Errorf("%s: %s description missing", s.Slug, b.ID)
		}
		if strings.Contains(body, html.EscapeString(a.Description)) {
			t.Errorf("%s: %s description still shown", s.Slug, a.ID)
		}
	}
}

func TestRanchScenario(t *testing.T) {
	h := newTestRouter(t, nil)
	const garage = "The attached garage became a standard feature of Ranch homes, integrated into the main structure rather than as a separate building. This innovation reflected America&#39;s growing car culture in the mid-20th century."

	body := get(t, h, "/styles/ranch", false).Body.String()
	body = get(t, h, toggleTarget(t, body, "attached-garage"), false).Body.String()
	if !strings.Contains(body, garage) {
		t.Fatal("attached garage description missing")
	}
	if !strings.Contains(body, "<h3>Attached Garage</h3>") {
		t.Error("panel heading missing")
	}

	body = get(t, h, toggleTarget(t, body, "attached-garage"), false).Body.String()
	if hasPanel(body) {
		t.Fatal("panel visible after second click")
	}

	body = get(t, h, toggleTarget(t, body, "large-windows"), false).Body.String()
	if !strings.Contains(body, "Ranch homes typically feature large windows") {
		t.Error("large windows description missing")
	}
	if strings.Contains(body, garage) {
		t.Error("attached garage description still shown")
	}
}

func TestNotFound(t *testing.T) {
	h := newTestRouter(t, nil)
	for _, target := range []string{
		"/styles/brutalist",
		"/styles/ranch?feature=turret",
		"/styles/ranch/explorer?feature=turret",
		"/nowhere",
	} {
		rec := get(t, h, target, false)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", target, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Page not found") {
			t.Errorf("%s: not-found page not rendered", target)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/styles/ranch", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestExplorerFragment(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := get(t, h, "/styles/ranch/explorer?feature=attached-garage", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!doctype html>") {
		t.Error("fragment contains a full document")
	}
	if !strings.HasPrefix(body, `<section id="explorer"`) {
		t.Errorf("fragment starts with %.40q", body)
	}
	if !strings.Contains(body, "The attached garage became a standard feature") {
		t.Error("fragment missing description")
	}
	if !strings.Contains(body, `hx-get="/styles/ranch/explorer"`) {
		t.Error("selected region should fetch the empty fragment")
	}
}

func TestExplorerRedirectsFullLoads(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := get(t, h, "/styles/ranch/explorer?feature=attached-garage", false)
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/styles/ranch?feature=attached-garage" {
		t.Errorf("location = %q", loc)
	}
}

func TestPagesAreCached(t *testing.T) {
	c := cache.NewMemoryCache()
	h := newTestRouter(t, c)

	first := get(t, h, "/styles/craftsman?feature=knee-braces", false)
	if got := first.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("first X-Cache = %q, want miss", got)
	}
	second := get(t, h, "/styles/craftsman?feature=knee-braces", false)
	if got := second.Header().Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached body differs")
	}

	get(t, h, "/styles/craftsman?feature=nope", false)
	if c.Len() != 1 {
		t.Errorf("cache entries = %d, want 1", c.Len())
	}
}
