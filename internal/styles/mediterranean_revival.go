package styles

import "archstyles/internal/diagram"

var (
	mediterraneanWalls = &Feature{
		ID:          "stucco-walls",
		Description: "Smooth stucco exterior walls in white or pastel colors are characteristic of Mediterranean Revival homes. This finish mimics the traditional building materials of Mediterranean coastal regions and provides a backdrop for ornamental details.",
		Hit:         []diagram.Rect{hit(190, 340, 420, 220)},
		Shapes: shapes(
			path("M200,550 L200,350 L600,350 L600,550 Z", 2),
		),
		Labels: []diagram.Label{
			labelRight("M600,500 L640,500 L660,520", 665, 523, "Stucco Walls"),
		},
	}

	mediterraneanRoof = &Feature{
		ID:          "tile-roof",
		Title:       "Low-Pitched Tile Roof",
		Description: "Low-pitched clay tile roofs in red, orange, or terra cotta are perhaps the most distinctive feature of Mediterranean Revival architecture. These tiles, often with a half-barrel shape, create a distinctive silhouette and texture.",
		Hit:         []diagram.Rect{hit(170, 250, 460, 100)},
		Shapes: diagram.Shapes(
			shapes(path("M180,350 L400,250 L620,350 Z", 1.5)),
			diagram.Repeat(4, func(i int) diagram.Shape {
				y := 270 + float64(i)*20
				half := (y - 250) * 2.2
				return line(400-half, y, 400+half, y, 0.5)
			}),
		),
		Labels: []diagram.Label{
			labelRight("M400,240 L400,210 L430,210", 435, 213, "Low-Pitched Tile Roof"),
		},
	}

	mediterraneanArches = &Feature{
		ID:          "arched-windows-doors",
		Title:       "Arched Windows & Doors",
		Description: "Arched openings are a signature element of Mediterranean Revival architecture. Windows and doorways typically feature rounded arches, reflecting Spanish, Italian, and Moorish influences. These arched elements add elegance and a sense of history to the façade.",
		Hit:         []diagram.Rect{hit(240, 330, 100, 60), hit(460, 330, 100, 60), hit(350, 400, 100, 150)},
		Shapes: shapes(
			path("M250,390 L250,370 Q290,330 330,370 L330,390 Z", 1),
			path("M470,390 L470,370 Q510,330 550,370 L550,390 Z", 1),
			path("M360,550 L360,450 Q400,410 440,450 L440,550", 1),
			knob(425, 500, 2),
		),
		Labels: []diagram.Label{
			labelLeft("M250,370 L220,370 L200,390", 195, 393, "Arched Windows"),
			labelLeft("M360,470 L330,470 L310,490", 305, 493, "Arched Door"),
		},
	}

	mediterraneanBalconies = &Feature{
		ID:          "wrought-iron-balconies",
		Title:       "Wrought Iron Balconies",
		Description: "Decorative wrought iron elements, including balconies, window grilles, and railings, are hallmarks of Mediterranean Revival style. These features add visual interest and authentic Mediterranean character while also serving functional purposes.",
		Hit:         []diagram.Rect{hit(240, 390, 100, 30), hit(460, 390, 100, 30)},
		Shapes: diagram.Shapes(
			shapes(
				line(245, 395, 335, 395, 1),
				line(245, 415, 335, 415, 1),
				line(465, 395, 555, 395, 1),
				line(465, 415, 555, 415, 1),
			),
			diagram.Repeat(10, func(i int) diagram.Shape {
				x := 250 + float64(i)*9
				return line(x, 395, x, 415, 0.5)
			}),
			diagram.Repeat(10, func(i int) diagram.Shape {
				x := 470 + float64(i)*9
				return line(x, 395, x, 415, 0.5)
			}),
		),
		Labels: []diagram.Label{
			labelRight("M560,405 L630,405 L650,425", 655, 428, "Wrought Iron Balconies"),
		},
	}
)

// MediterraneanRevival is the Spanish and Italian villa revival style.
var MediterraneanRevival = &Style{
	Slug:    "mediterranean-revival",
	Name:    "Mediterranean Revival",
	Era:     "1920s-1950s",
	Summary: "Gained popularity in the 1920s-1950s, featuring stucco walls, low-pitched red tile roofs, arched windows, and enclosed courtyards.",
	Icon:    "🏺",
	Prose: []string{
		"Mediterranean Revival architecture draws inspiration from the seaside villas of Mediterranean countries. This romantic style became particularly popular in warm-weather states like Florida and California during the 1920s and 1930s resort boom.",
		"Characteristic elements include stucco walls, low-pitched red tile roofs, arched windows and doors, wrought iron balconies and window grilles, courtyard entries, and symmetrical facades. The style often features outdoor living spaces like courtyards and loggias, reflecting the Mediterranean lifestyle.",
	},
	Diagram: Diagram{
		Layers: []Layer{
			Static(diagram.Ground()),
			Region(mediterraneanWalls),
			Region(mediterraneanRoof),
			Region(mediterraneanArches),
			Region(mediterraneanBalconies),
		},
	},
}
