package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomeLink is the back button at the top of every style page.
func HomeLink(href string) g.Node {
	return h.Div(h.Class("nav"),
		h.A(h.Href(href), h.Class("button"), g.Text("← Home")),
	)
}
