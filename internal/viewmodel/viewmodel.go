package viewmodel

import g "maragu.dev/gomponents"

// Card is one entry of the landing index.
type Card struct {
	Name        string
	Description string
	Icon        string
	Href        string
}

// IndexPage holds data for the landing page template.
type IndexPage struct {
	Title string
	Intro string
	Cards []Card
}

// StylePage holds data for a style page template.
type StylePage struct {
	Title    string
	Era      string
	Prose    []string
	HomeHref string
	Explorer Explorer
}

// Explorer is the swappable part of a style page: the diagram and the panel.
type Explorer struct {
	// ID is the element id htmx targets when swapping the fragment.
	ID      string
	Diagram Diagram
	Panel   FeaturePanel
}

// Diagram holds the drawing in paint order.
type Diagram struct {
	Title    string
	Patterns []g.Node
	Layers   []Layer
}

// Layer is either static drawing (Region nil) or a clickable region.
type Layer struct {
	Shapes []g.Node
	Region *Region
}

// Region holds one clickable feature of the diagram.
type Region struct {
	ID       string
	Heading  string
	Selected bool
	// Href is the page URL after toggling this region.
	Href string
	// HxGet is the fragment URL after toggling; empty when there is none.
	HxGet  string
	Hit    []g.Node
	Shapes []g.Node
	Labels []g.Node
}

// FeaturePanel holds the detail shown for the selected feature.
type FeaturePanel struct {
	Visible     bool
	Heading     string
	Description string
	// CloseHref clears the selection.
	CloseHref  string
	CloseHxGet string
}

// NotFoundPage holds data for the 404 page.
type NotFoundPage struct {
	Title    string
	Message  string
	HomeHref string
}

// Layout holds the data every full page shares.
type Layout struct {
	Title      string
	Stylesheet string
	// HTMX loads the htmx script; static exports have no fragment endpoint.
	HTMX bool
}
