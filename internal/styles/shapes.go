package styles

import "archstyles/internal/diagram"

// Shorthands for authoring elevations.

func line(x1, y1, x2, y2, w float64) diagram.Line {
	return diagram.Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: w}
}

func rect(x, y, w, h, stroke float64) diagram.Rect {
	return diagram.Rect{X: x, Y: y, W: w, H: h, Width: stroke}
}

func path(d string, w float64) diagram.Path {
	return diagram.Path{D: d, Width: w}
}

// outline is an open stroke that never takes the region fill.
func outline(d string, w float64) diagram.Path {
	return diagram.Path{D: d, Width: w, Fill: diagram.FillNone}
}

// wall is painted with the surface colour whatever is selected.
func wall(d string, w float64) diagram.Path {
	return diagram.Path{D: d, Width: w, Fill: diagram.FillSurface}
}

func knob(cx, cy, r float64) diagram.Circle {
	return diagram.Circle{CX: cx, CY: cy, R: r, Fill: diagram.FillInk}
}

func hit(x, y, w, h float64) diagram.Rect {
	return diagram.Rect{X: x, Y: y, W: w, H: h}
}

func labelRight(leader string, x, y float64, text string) diagram.Label {
	return diagram.Label{Leader: leader, X: x, Y: y, Anchor: diagram.AnchorStart, Text: text}
}

func labelLeft(leader string, x, y float64, text string) diagram.Label {
	return diagram.Label{Leader: leader, X: x, Y: y, Anchor: diagram.AnchorEnd, Text: text}
}

func shapes(s ...diagram.Shape) []diagram.Shape {
	return s
}

func solid(x, y, w, h, stroke float64) diagram.Rect {
	return diagram.Rect{X: x, Y: y, W: w, H: h, Width: stroke, Fill: diagram.FillSurface}
}
