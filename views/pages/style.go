package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"archstyles/internal/viewmodel"
	"archstyles/views/components"
)

func StylePage(l viewmodel.Layout, data viewmodel.StylePage) templ.Component {
	prose := []g.Node{h.Class("prose")}
	for _, p := range data.Prose {
		prose = append(prose, h.P(g.Text(p)))
	}
	return components.Page(l,
		components.HomeLink(data.HomeHref),
		h.Article(h.Class("style"),
			h.Header(
				h.H1(g.Text(data.Title)),
				h.P(h.Class("era"), g.Text(data.Era)),
			),
			h.Div(prose...),
			components.Explorer(data.Explorer),
		),
	)
}

// ExplorerFragment is the part of a style page htmx swaps on a click.
func ExplorerFragment(data viewmodel.Explorer) templ.Component {
	return components.Component(components.Explorer(data))
}
