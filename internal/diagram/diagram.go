// Package diagram holds the vector primitives used to draw house elevations.
//
// Shapes are plain geometry in a fixed 800x600 user space. Each shape renders
// to a gomponents node; the caller decides which shapes are grouped into
// clickable regions.
package diagram

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Standard canvas used by every elevation.
const (
	Width  = 800
	Height = 600
)

// ArrowMarkerID is the id of the arrowhead marker leader lines end with.
const ArrowMarkerID = "arrowhead"

// Fill selects how a closed shape is painted.
type Fill string

const (
	// FillInherit takes the fill of the enclosing group, which is how a
	// region changes colour when it is selected.
	FillInherit Fill = ""
	FillNone    Fill = "none"
	// FillSurface always paints the wall colour, regardless of selection.
	FillSurface Fill = "surface"
	// FillInk paints with the stroke colour (door knobs, finials).
	FillInk Fill = "ink"
)

// PatternFill references a Pattern by id.
func PatternFill(id string) Fill {
	return Fill("url(#" + id + ")")
}

// Shape is anything that can be drawn inside the frame.
type Shape interface {
	Node() g.Node
}

// Line is a straight stroke.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

func (l Line) Node() g.Node {
	return g.El("line",
		g.Attr("x1", num(l.X1)), g.Attr("y1", num(l.Y1)),
		g.Attr("x2", num(l.X2)), g.Attr("y2", num(l.Y2)),
		strokeWidth(l.Width),
	)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
	Width      float64
	Fill       Fill
}

func (r Rect) Node() g.Node {
	return g.El("rect",
		g.Attr("x", num(r.X)), g.Attr("y", num(r.Y)),
		g.Attr("width", num(r.W)), g.Attr("height", num(r.H)),
		strokeWidth(r.Width),
		fill(r.Fill),
	)
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Path is an SVG path with raw path data.
type Path struct {
	D     string
	Width float64
	Fill  Fill
}

func (p Path) Node() g.Node {
	return g.El("path",
		g.Attr("d", p.D),
		strokeWidth(p.Width),
		fill(p.Fill),
	)
}

// Circle is a circle centred on (CX, CY).
type Circle struct {
	CX, CY, R float64
	Width     float64
	Fill      Fill
}

func (c Circle) Node() g.Node {
	return g.El("circle",
		g.Attr("cx", num(c.CX)), g.Attr("cy", num(c.CY)), g.Attr("r", num(c.R)),
		strokeWidth(c.Width),
		fill(c.Fill),
	)
}

// Anchor is the horizontal alignment of label text.
type Anchor string

const (
	AnchorStart Anchor = "start"
	AnchorEnd   Anchor = "end"
)

// Label is an annotation: a leader line ending in an arrow and a caption.
type Label struct {
	Leader string
	X, Y   float64
	Anchor Anchor
	Text   string
}

func (l Label) Node() g.Node {
	anchor := l.Anchor
	if anchor == "" {
		anchor = AnchorStart
	}
	return g.Group([]g.Node{
		g.El("path",
			g.Attr("d", l.Leader),
			g.Attr("fill", "none"),
			g.Attr("stroke", "currentColor"),
			g.Attr("stroke-width", "0.75"),
			g.Attr("marker-end", "url(#"+ArrowMarkerID+")"),
		),
		g.El("text",
			g.Attr("x", num(l.X)), g.Attr("y", num(l.Y)),
			g.Attr("text-anchor", string(anchor)),
			g.Text(l.Text),
		),
	})
}

// Pattern is a tiled fill defined once per diagram.
type Pattern struct {
	ID     string
	W, H   float64
	Shapes []Shape
}

func (p Pattern) Node() g.Node {
	children := []g.Node{
		h.ID(p.ID),
		g.Attr("patternUnits", "userSpaceOnUse"),
		g.Attr("width", num(p.W)),
		g.Attr("height", num(p.H)),
	}
	for _, s := range p.Shapes {
		children = append(children, s.Node())
	}
	return g.El("pattern", children...)
}

// Frame renders the <svg> root with the shared defs.
func Frame(title string, patterns []Pattern, children ...g.Node) g.Node {
	defs := []g.Node{arrowMarker()}
	for _, p := range patterns {
		defs = append(defs, p.Node())
	}
	nodes := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 "+num(Width)+" "+num(Height)),
		g.Attr("role", "img"),
		g.Attr("aria-label", title),
		h.Class("diagram"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.El("title", g.Text(title)),
		g.El("defs", defs...),
	}
	nodes = append(nodes, children...)
	return g.El("svg", nodes...)
}

// HitArea is the invisible rectangle that receives clicks for a region.
func HitArea(r Rect) g.Node {
	return g.El("rect",
		h.Class("hit"),
		g.Attr("x", num(r.X)), g.Attr("y", num(r.Y)),
		g.Attr("width", num(r.W)), g.Attr("height", num(r.H)),
	)
}

// Ground is the baseline every elevation stands on.
func Ground() Line {
	return Line{X1: 50, Y1: 550, X2: 750, Y2: 550, Width: 1}
}

// Repeat builds n shapes from fn, for railings, dentils and rafter tails.
func Repeat(n int, fn func(i int) Shape) []Shape {
	out := make([]Shape, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}

// Shapes concatenates shape lists.
func Shapes(groups ...[]Shape) []Shape {
	var out []Shape
	for _, grp := range groups {
		out = append(out, grp...)
	}
	return out
}

func arrowMarker() g.Node {
	return g.El("marker",
		h.ID(ArrowMarkerID),
		g.Attr("markerWidth", "8"),
		g.Attr("markerHeight", "6"),
		g.Attr("refX", "7"),
		g.Attr("refY", "3"),
		g.Attr("orient", "auto"),
		g.Attr("markerUnits", "strokeWidth"),
		g.El("path", g.Attr("d", "M0,0 L8,3 L0,6 Z"), g.Attr("fill", "currentColor")),
	)
}

func strokeWidth(w float64) g.Node {
	if w == 0 {
		return g.Group(nil)
	}
	return g.Attr("stroke-width", num(w))
}

func fill(f Fill) g.Node {
	switch f {
	case FillInherit:
		return g.Group(nil)
	case FillSurface:
		return h.Class("surface")
	case FillInk:
		return g.Attr("fill", "currentColor")
	default:
		return g.Attr("fill", string(f))
	}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
