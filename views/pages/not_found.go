package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"archstyles/internal/viewmodel"
	"archstyles/views/components"
)

func NotFoundPage(l viewmodel.Layout, data viewmodel.NotFoundPage) templ.Component {
	return components.Page(l,
		components.HomeLink(data.HomeHref),
		h.Article(h.Class("not-found"),
			h.H1(g.Text(data.Title)),
			h.P(g.Text(data.Message)),
		),
	)
}
