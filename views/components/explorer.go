package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"archstyles/internal/diagram"
	"archstyles/internal/viewmodel"
)

// Explorer renders the interactive diagram and the feature panel. It is
// both part of the style page and the htmx fragment that replaces it.
func Explorer(e viewmodel.Explorer) g.Node {
	return h.Section(h.ID(e.ID), h.Class("explorer"),
		h.Div(h.Class("diagram-frame"), Diagram(e.ID, e.Diagram)),
		FeaturePanel(e.ID, e.Panel),
	)
}

// Diagram draws the layers in order, then every label on top.
func Diagram(target string, d viewmodel.Diagram) g.Node {
	var children, labels []g.Node
	if len(d.Patterns) > 0 {
		children = append(children, g.El("defs", d.Patterns...))
	}
	for _, l := range d.Layers {
		if l.Region == nil {
			children = append(children, l.Shapes...)
			continue
		}
		children = append(children, region(target, l.Region))
		labels = append(labels, l.Region.Labels...)
	}
	children = append(children, g.El("g", append([]g.Node{h.Class("labels")}, labels...)...))

	return diagram.Frame(d.Title, nil, children...)
}

func region(target string, r *viewmodel.Region) g.Node {
	class := "region"
	if r.Selected {
		class += " is-selected"
	}
	link := []g.Node{
		h.Href(r.Href),
		g.Attr("aria-label", r.Heading),
	}
	if r.Selected {
		link = append(link, g.Attr("aria-current", "true"))
	}
	link = append(link, htmx(target, r.HxGet, r.Href)...)
	link = append(link, r.Hit...)
	link = append(link, r.Shapes...)

	return g.El("g", h.Class(class), g.Attr("data-feature", r.ID),
		g.El("a", link...),
	)
}

// FeaturePanel shows the selected feature; it renders nothing when the
// selection is empty.
func FeaturePanel(target string, p viewmodel.FeaturePanel) g.Node {
	if !p.Visible {
		return g.Group(nil)
	}
	closeLink := []g.Node{h.Href(p.CloseHref), h.Class("panel-close"), g.Attr("aria-label", "Close")}
	closeLink = append(closeLink, htmx(target, p.CloseHxGet, p.CloseHref)...)
	closeLink = append(closeLink, g.Text("×"))

	return h.Aside(h.Class("feature-panel"), g.Attr("aria-live", "polite"),
		h.A(closeLink...),
		h.H3(g.Text(p.Heading)),
		h.P(g.Text(p.Description)),
	)
}

func htmx(target, get, push string) []g.Node {
	if get == "" {
		return nil
	}
	return []g.Node{
		g.Attr("hx-get", get),
		g.Attr("hx-target", "#"+target),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-push-url", push),
	}
}
