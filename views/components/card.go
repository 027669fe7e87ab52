package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"archstyles/internal/viewmodel"
)

// CardGrid renders the landing page cards in order.
func CardGrid(cards []viewmodel.Card) g.Node {
	items := make([]g.Node, 0, len(cards)+1)
	items = append(items, h.Class("cards"))
	for _, c := range cards {
		items = append(items, Card(c))
	}
	return h.Div(items...)
}

func Card(c viewmodel.Card) g.Node {
	return h.A(h.Href(c.Href), h.Class("card"),
		h.Span(h.Class("card-icon"), g.Attr("aria-hidden", "true"), g.Text(c.Icon)),
		h.H3(g.Text(c.Name)),
		h.P(g.Text(c.Description)),
		h.Span(h.Class("card-more"), g.Text("Explore →")),
	)
}
