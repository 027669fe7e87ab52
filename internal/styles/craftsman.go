package styles

import "archstyles/internal/diagram"

var (
	craftsmanRoof = &Feature{
		ID:          "low-pitched-roof",
		Title:       "Low-Pitched Roof & Wide Eaves",
		Description: "Low-pitched gabled roofs with wide, unenclosed eave overhangs are a defining feature of Craftsman style homes. The shallow slope of the roof contrasts with the steeper roofs of Victorian styles.",
		Hit:         []diagram.Rect{hit(150, 150, 500, 100)},
		Shapes: shapes(
			path("M150,250 L400,150 L650,250 Z", 1.5),
		),
		Labels: []diagram.Label{
			labelRight("M400,145 L400,120 L430,120", 435, 123, "Low-Pitched Roof & Wide Eaves"),
		},
	}

	craftsmanRafters = &Feature{
		ID:          "exposed-rafters",
		Description: "Exposed roof rafters extend beyond the roof, creating a distinctive shadow line and emphasizing the structural elements of the house as decorative features.",
		Hit:         []diagram.Rect{hit(175, 250, 475, 15)},
		Shapes: diagram.Repeat(10, func(i int) diagram.Shape {
			return rect(175+float64(i)*50, 250, 8, 15, 1)
		}),
		Labels: []diagram.Label{
			labelLeft("M160,260 L130,260 L110,280", 105, 283, "Exposed Rafter Tails"),
		},
	}

	craftsmanColumns = &Feature{
		ID:          "tapered-columns",
		Description: "Square columns that taper as they rise, often set on large piers extending to ground level, support the porch roof. These are distinctly different from the round columns of Classical styles.",
		Hit:         []diagram.Rect{hit(280, 300, 240, 250)},
		Shapes: shapes(
			path("M250,300 L400,250 L550,300", 1),
			line(250, 300, 550, 300, 1),
			diagram.Rect{X: 280, Y: 450, W: 80, H: 100, Width: 1, Fill: diagram.PatternFill(craftsmanBrickID)},
			diagram.Rect{X: 440, Y: 450, W: 80, H: 100, Width: 1, Fill: diagram.PatternFill(craftsmanBrickID)},
			path("M290,450 L310,300 L350,300 L370,450 Z", 1),
			path("M430,450 L450,300 L490,300 L510,450 Z", 1),
		),
		Labels: []diagram.Label{
			labelLeft("M270,400 L240,400 L220,420", 215, 423, "Tapered Columns on Piers"),
		},
	}

	craftsmanWindows = &Feature{
		ID:          "grouped-windows",
		Description: "Windows are typically arranged in groups of two or three. The upper sash often has a divided-light pattern, while the lower sash is a single pane, creating visual interest.",
		Hit:         []diagram.Rect{hit(220, 320, 100, 150), hit(480, 320, 100, 150)},
		Shapes: shapes(
			rect(220, 320, 100, 150, 1),
			line(220, 380, 320, 380, 0.75),
			line(270, 320, 270, 380, 0.75),
			line(245, 320, 245, 380, 0.75),
			line(295, 320, 295, 380, 0.75),
			rect(480, 320, 100, 150, 1),
			line(480, 380, 580, 380, 0.75),
			line(530, 320, 530, 380, 0.75),
			line(505, 320, 505, 380, 0.75),
			line(555, 320, 555, 380, 0.75),
		),
		Labels: []diagram.Label{
			labelRight("M600,350 L630,350 L650,370", 655, 373, "Multi-Pane Windows"),
		},
	}

	craftsmanBraces = &Feature{
		ID:          "knee-braces",
		Description: "Decorative brackets or braces under the gables are both structural and ornamental. They support the wide eave overhangs and add a handcrafted aesthetic to the home.",
		Hit:         []diagram.Rect{hit(380, 170, 40, 20)},
		Shapes: shapes(
			outline("M380,170 L380,190 L420,190", 1),
			outline("M420,170 L420,190 L380,190", 1),
		),
		Labels: []diagram.Label{
			labelRight("M400,180 L400,210 L430,210", 435, 213, "Knee Braces"),
		},
	}
)

const (
	craftsmanSidingID = "wood-siding"
	craftsmanBrickID  = "brick"
)

// Craftsman is the Arts and Crafts bungalow style.
var Craftsman = &Style{
	Slug:    "craftsman",
	Name:    "Craftsman",
	Era:     "1900s-1930s",
	Summary: "Emerged in the 1900s-1930s, featuring natural materials, wide porches with tapered columns, exposed beams, and handcrafted woodwork.",
	Icon:    "🏠",
	Prose: []string{
		"The Craftsman style emerged from the Arts and Crafts movement, emphasizing handcrafted quality, natural materials, and simplicity. This style represented a rejection of the mass-produced, ornate elements of the Victorian era in favor of artisanal craftsmanship.",
		"Defining features include low-pitched gabled roofs with wide, unenclosed eave overhangs, exposed roof rafters, decorative beams or braces under the gables, and tapered square columns supporting the porch roof. The emphasis on natural materials is evident in the use of wood, stone, and brick throughout these homes.",
	},
	Diagram: Diagram{
		Patterns: []diagram.Pattern{
			{
				ID: craftsmanSidingID, W: 8, H: 8,
				Shapes: shapes(outline("M0,4 L8,4", 0.5)),
			},
			{
				ID: craftsmanBrickID, W: 20, H: 10,
				Shapes: shapes(
					outline("M0,0 L20,0 M0,5 L20,5", 0.5),
					outline("M10,0 L10,5 M0,5 L0,10 M20,5 L20,10", 0.5),
				),
			},
		},
		Layers: []Layer{
			Static(
				diagram.Ground(),
				diagram.Path{D: "M200,550 L200,250 L600,250 L600,550 Z", Width: 2, Fill: diagram.PatternFill(craftsmanSidingID)},
			),
			Region(craftsmanRoof),
			Region(craftsmanRafters),
			Region(craftsmanColumns),
			Region(craftsmanWindows),
			Static(
				solid(380, 450, 80, 100, 1),
				rect(390, 460, 20, 30, 0.5),
				knob(445, 500, 3),
			),
			Region(craftsmanBraces),
		},
	},
}
