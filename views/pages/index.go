// Package pages holds the full HTML documents served by the site.
package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"archstyles/internal/viewmodel"
	"archstyles/views/components"
)

func IndexPage(l viewmodel.Layout, data viewmodel.IndexPage) templ.Component {
	return components.Page(l,
		h.Header(h.Class("hero"),
			h.H1(g.Text(data.Title)),
			h.P(h.Class("lead"), g.Text(data.Intro)),
		),
		components.CardGrid(data.Cards),
	)
}
