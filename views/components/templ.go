// Package components holds the markup shared by pages and htmx fragments.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"archstyles/internal/viewmodel"
)

// Component adapts a node tree to the templ.Component interface the
// handlers render.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Page renders body as the children of Layout.
func Page(l viewmodel.Layout, body ...g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(l).Render(templ.WithChildren(ctx, Component(g.Group(body))), w)
	})
}
