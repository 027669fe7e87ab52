// Package site turns catalog entries and a selection into view models.
package site

import (
	"fmt"

	"archstyles/internal/diagram"
	"archstyles/internal/styles"
	"archstyles/internal/viewmodel"
	"archstyles/pkg/selection"
	"archstyles/static"

	g "maragu.dev/gomponents"
)

const (
	Title = "Architectural Styles Explorer"
	Intro = "Discover and explore the rich history of architectural styles through an interactive visual journey"

	// ExplorerID is the element htmx swaps when a region is toggled.
	ExplorerID = "explorer"
)

// Panel is the page-local selection of a style page.
type Panel = selection.Panel[styles.FeatureID, *styles.Feature]

// Layout is the document shell for a page titled title.
func Layout(title string, links Links) viewmodel.Layout {
	return viewmodel.Layout{
		Title:      title,
		Stylesheet: links.Static(static.Stylesheet),
		HTMX:       links.Fragment("", "") != "",
	}
}

// Selection builds the panel of s with feature selected. An empty feature
// means nothing is selected; an id that is not one of the page's regions is
// styles.ErrUnknownFeature.
func Selection(s *styles.Style, feature string) (Panel, error) {
	panel, err := s.Panel()
	if err != nil {
		return panel, err
	}
	if feature == "" {
		return panel, nil
	}
	next, ok := panel.Select(styles.FeatureID(feature))
	if !ok {
		return panel, fmt.Errorf("%w: %s/%s", styles.ErrUnknownFeature, s.Slug, feature)
	}
	return next, nil
}

// IndexPage builds the landing page: one card per style, in catalog order.
func IndexPage(c *styles.Catalog, links Links) viewmodel.IndexPage {
	all := c.All()
	cards := make([]viewmodel.Card, 0, len(all))
	for _, s := range all {
		cards = append(cards, viewmodel.Card{
			Name:        s.Name,
			Description: s.Summary,
			Icon:        s.Icon,
			Href:        links.Style(s.Slug, ""),
		})
	}
	return viewmodel.IndexPage{
		Title: Title,
		Intro: Intro,
		Cards: cards,
	}
}

// StylePage builds a style page for the given selection.
func StylePage(s *styles.Style, panel Panel, links Links) viewmodel.StylePage {
	return viewmodel.StylePage{
		Title:    s.Title(),
		Era:      s.Era,
		Prose:    s.Prose,
		HomeHref: links.Index(),
		Explorer: Explorer(s, panel, links),
	}
}

// Explorer builds the diagram and feature panel. Every region links to the
// selection that clicking it produces: the same region clears, another
// region replaces.
func Explorer(s *styles.Style, panel Panel, links Links) viewmodel.Explorer {
	d := viewmodel.Diagram{Title: s.Title() + " elevation"}
	for _, p := range s.Diagram.Patterns {
		d.Patterns = append(d.Patterns, p.Node())
	}
	for _, l := range s.Diagram.Layers {
		if l.Feature == nil {
			d.Layers = append(d.Layers, viewmodel.Layer{Shapes: nodes(l.Shapes)})
			continue
		}
		d.Layers = append(d.Layers, viewmodel.Layer{Region: region(s.Slug, l.Feature, panel, links)})
	}

	return viewmodel.Explorer{
		ID:      ExplorerID,
		Diagram: d,
		Panel:   featurePanel(s.Slug, panel, links),
	}
}

func region(slug string, f *styles.Feature, panel Panel, links Links) *viewmodel.Region {
	next, _, _ := panel.Toggle(f.ID).Selected()
	r := &viewmodel.Region{
		ID:       string(f.ID),
		Heading:  f.Heading(),
		Selected: panel.IsSelected(f.ID),
		Href:     links.Style(slug, next),
		HxGet:    links.Fragment(slug, next),
		Shapes:   nodes(f.Shapes),
	}
	for _, h := range f.Hit {
		r.Hit = append(r.Hit, diagram.HitArea(h))
	}
	for _, l := range f.Labels {
		r.Labels = append(r.Labels, l.Node())
	}
	return r
}

func featurePanel(slug string, panel Panel, links Links) viewmodel.FeaturePanel {
	_, f, ok := panel.Selected()
	if !ok {
		return viewmodel.FeaturePanel{}
	}
	return viewmodel.FeaturePanel{
		Visible:     true,
		Heading:     f.Heading(),
		Description: f.Description,
		CloseHref:   links.Style(slug, ""),
		CloseHxGet:  links.Fragment(slug, ""),
	}
}

func nodes(shapes []diagram.Shape) []g.Node {
	out := make([]g.Node, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, s.Node())
	}
	return out
}
