package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"archstyles/internal/viewmodel"
)

func renderString(t *testing.T, render func(*bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestIndexPageRendersCards(t *testing.T) {
	layout := viewmodel.Layout{Title: "Styles", Stylesheet: "/static/site.css", HTMX: true}
	data := viewmodel.IndexPage{
		Title: "Styles",
		Intro: "Intro & more",
		Cards: []viewmodel.Card{
			{Name: "Ranch", Description: "Low", Icon: "🏡", Href: "/styles/ranch"},
			{Name: "Craftsman", Description: "Wide eaves", Icon: "🏠", Href: "/styles/craftsman"},
		},
	}
	out := renderString(t, func(b *bytes.Buffer) error {
		return IndexPage(layout, data).Render(context.Background(), b)
	})

	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Errorf("missing doctype: %.40s", out)
	}
	if got := strings.Count(out, `class="card"`); got != 2 {
		t.Errorf("card count = %d, want 2", got)
	}
	for _, want := range []string{
		`href="/styles/ranch"`,
		"Intro &amp; more",
		`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`,
		`<link rel="stylesheet" href="/static/site.css">`,
		"<title>Styles</title>",
		`<main class="page"><header class="hero">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestLayoutWithoutHTMX(t *testing.T) {
	out := renderString(t, func(b *bytes.Buffer) error {
		return NotFoundPage(viewmodel.Layout{Title: "Not found"}, viewmodel.NotFoundPage{
			Title:    "Page not found",
			Message:  "No such style.",
			HomeHref: "/",
		}).Render(context.Background(), b)
	})
	if strings.Contains(out, "htmx.org") {
		t.Error("htmx script rendered without HTMX")
	}
	if !strings.Contains(out, "No such style.") {
		t.Error("message missing")
	}
}

func TestExplorerFragmentPanel(t *testing.T) {
	e := viewmodel.Explorer{
		ID: "explorer",
		Diagram: viewmodel.Diagram{
			Title: "Ranch Style elevation",
			Layers: []viewmodel.Layer{
				{Region: &viewmodel.Region{ID: "attached-garage", Heading: "Attached Garage", Selected: true, Href: "/styles/ranch", HxGet: "/styles/ranch/explorer"}},
				{Region: &viewmodel.Region{ID: "large-windows", Heading: "Large Windows", Href: "/styles/ranch?feature=large-windows"}},
			},
		},
		Panel: viewmodel.FeaturePanel{Visible: true, Heading: "Attached Garage", Description: "Garage text.", CloseHref: "/styles/ranch"},
	}
	out := renderString(t, func(b *bytes.Buffer) error {
		return ExplorerFragment(e).Render(context.Background(), b)
	})

	for _, want := range []string{
		`id="explorer"`,
		`class="region is-selected"`,
		`data-feature="large-windows"`,
		`hx-get="/styles/ranch/explorer"`,
		`hx-target="#explorer"`,
		`class="feature-panel"`,
		"Garage text.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("fragment missing %q", want)
		}
	}
	if strings.Contains(out, "<!doctype") {
		t.Error("fragment rendered the full document")
	}

	e.Panel = viewmodel.FeaturePanel{}
	out = renderString(t, func(b *bytes.Buffer) error {
		return ExplorerFragment(e).Render(context.Background(), b)
	})
	if strings.Contains(out, "feature-panel") {
		t.Error("panel rendered with empty selection")
	}
}
