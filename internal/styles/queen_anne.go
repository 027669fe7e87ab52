package styles

import "archstyles/internal/diagram"

var (
	queenAnneTower = &Feature{
		ID:          "tower",
		Description: "Asymmetrical towers, often with conical or pyramid-shaped roofs, are a hallmark of Queen Anne style. They typically rise above the main roofline and serve as a focal point for the facade.",
		Hit:         []diagram.Rect{hit(490, 30, 120, 520)},
		Shapes: shapes(
			path("M500,550 L500,150 L600,150 L600,550", 1.5),
			path("M500,150 L550,50 L600,150 Z", 1.5),
			path("M548,50 L550,30 L552,50", 1),
			rect(520, 200, 60, 90, 1),
			line(550, 200, 550, 290, 0.75),
			line(520, 245, 580, 245, 0.75),
			rect(520, 320, 60, 90, 1),
			line(550, 320, 550, 410, 0.75),
			line(520, 365, 580, 365, 0.75),
		),
		Labels: []diagram.Label{
			labelRight("M620,180 L650,170 L680,170", 685, 173, "Tower"),
		},
	}

	queenAnnePorch = &Feature{
		ID:          "wraparound-porch",
		Description: "Wide, wraparound porches extend across multiple facades of the house, providing outdoor living space and creating a transition between interior and exterior spaces.",
		Hit:         []diagram.Rect{hit(140, 390, 520, 20), hit(140, 460, 520, 100)},
		Shapes: shapes(
			path("M150,550 L150,400 L650,400 L650,550", 1),
			path("M150,400 L650,400", 1.5),
			rect(160, 400, 15, 150, 1),
			rect(300, 400, 15, 150, 1),
			rect(450, 400, 15, 150, 1),
			rect(600, 400, 15, 150, 1),
		),
		Labels: []diagram.Label{
			labelLeft("M130,410 L100,410 L80,430", 75, 433, "Wraparound Porch"),
		},
	}

	queenAnneSpindles = &Feature{
		ID:          "spindle-work",
		Description: "Delicate turned wood balusters, often called 'gingerbread,' create decorative railings. This ornate spindle work is representative of the style's emphasis on decorative detail.",
		Hit:         []diagram.Rect{hit(140, 410, 520, 50)},
		Shapes: diagram.Shapes(
			shapes(
				line(150, 420, 650, 420, 0.75),
				line(150, 450, 650, 450, 0.75),
			),
			diagram.Repeat(20, func(i int) diagram.Shape {
				x := 150 + float64(i)*25 + 12.5
				return line(x, 420, x, 450, 0.75)
			}),
		),
		Labels: []diagram.Label{
			labelLeft("M130,440 L100,440 L80,460", 75, 463, "Spindle Work"),
		},
	}

	queenAnneWindows = &Feature{
		ID:          "decorative-windows",
		Description: "Windows are typically ornate with decorative crowns and surrounds. Single-pane sashes are common, sometimes with decorative upper sashes featuring small square panes or stained glass.",
		Hit:         []diagram.Rect{hit(240, 220, 220, 160)},
		Shapes: shapes(
			rect(250, 250, 80, 120, 1),
			line(290, 250, 290, 370, 0.75),
			line(250, 310, 330, 310, 0.75),
			outline("M245,250 Q290,230 335,250", 1),
			rect(370, 250, 80, 120, 1),
			line(410, 250, 410, 370, 0.75),
			line(370, 310, 450, 310, 0.75),
			outline("M365,250 Q410,230 455,250", 1),
		),
		Labels: []diagram.Label{
			labelRight("M355,240 L375,220 L405,220", 410, 223, "Ornate Windows"),
		},
	}

	queenAnneGable = &Feature{
		ID:          "gable-decoration",
		Description: "Ornate gable decorations, often referred to as 'gable ornaments' or 'gable screens,' add visual interest and texture to the upper portions of the house.",
		Hit:         []diagram.Rect{hit(375, 110, 50, 40)},
		Shapes: shapes(
			outline("M385,120 L400,140 L415,120", 1),
			diagram.Circle{CX: 400, CY: 130, R: 5, Fill: diagram.FillNone},
		),
		Labels: []diagram.Label{
			labelRight("M400,95 L400,65 L430,65", 435, 68, "Decorative Gable"),
		},
	}
)

// QueenAnne is the late-Victorian Queen Anne style.
var QueenAnne = &Style{
	Slug:    "queen-anne",
	Name:    "Queen Anne",
	Era:     "1880s-1910s",
	Summary: "Popular in the 1880s-1900s, featuring asymmetrical facades, decorative spindles, round towers, and ornate wraparound porches.",
	Icon:    "👑",
	Prose: []string{
		"The Queen Anne style represents the height of Victorian-era architecture in America. It emerged in the late 19th century, blending elements of Elizabethan and Jacobean design with American innovation and industrial-age manufacturing capabilities.",
		"These homes are known for their picturesque asymmetrical compositions, decorative excess, and eclectic details. Key features include steeply pitched roofs with irregular shapes, dominant front-facing gables, towers, wraparound porches with turned posts and spindle work, and walls with textured surfaces from varying materials and patterns. The overall effect is one of romantic complexity, a deliberate contrast to earlier, more symmetrical architectural styles.",
	},
	Diagram: Diagram{
		Layers: []Layer{
			Static(diagram.Ground()),
			Region(queenAnneTower),
			Static(
				wall("M200,550 L200,200 L500,200 L500,550 Z", 2),
				wall("M180,200 L400,80 L620,200", 1.5),
				wall("M200,200 L400,100 L500,200", 1.5),
			),
			Region(queenAnnePorch),
			Region(queenAnneSpindles),
			Region(queenAnneWindows),
			Static(
				solid(250, 450, 80, 100, 1),
				knob(315, 500, 3),
			),
			Region(queenAnneGable),
		},
	},
}
