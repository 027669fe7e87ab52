package styles

import "archstyles/internal/diagram"

var (
	ranchRoof = &Feature{
		ID:          "low-pitched-roof",
		Description: "The low-pitched roof is a defining characteristic of Ranch style, typically with wide eave overhangs. This roofline creates the home's characteristic horizontal silhouette and provides shade for large windows.",
		Hit:         []diagram.Rect{hit(150, 200, 500, 100)},
		Shapes: shapes(
			path("M180,300 L400,200 L620,300", 1.5),
		),
		Labels: []diagram.Label{
			labelRight("M400,290 L400,260 L430,260", 435, 263, "Low-Pitched Roof"),
		},
	}

	ranchSiding = &Feature{
		ID:          "horizontal-emphasis",
		Description: "Long, unbroken horizontal lines dominate the Ranch façade, from continuous runs of siding to the eave line that spans the full width of the house. Together they stress the home's width and its close relationship to the ground.",
		Hit:         []diagram.Rect{hit(190, 320, 420, 40)},
		Shapes: shapes(
			line(200, 330, 600, 330, 0.75),
			line(200, 350, 600, 350, 0.75),
		),
		Labels: []diagram.Label{
			labelRight("M610,340 L640,340 L660,320", 665, 317, "Horizontal Emphasis"),
		},
	}

	ranchWindows = &Feature{
		ID:          "large-windows",
		Description: "Ranch homes typically feature large windows, especially in living areas, to maximize natural light and create a connection with the outdoors. These windows are often wider than they are tall, reinforcing the home's horizontal emphasis.",
		Hit:         []diagram.Rect{hit(240, 350, 160, 100)},
		Shapes: shapes(
			rect(250, 360, 140, 80, 1),
			line(296, 360, 296, 440, 0.75),
			line(344, 360, 344, 440, 0.75),
		),
		Labels: []diagram.Label{
			labelLeft("M240,400 L200,400 L180,420", 175, 423, "Large Windows"),
		},
	}

	ranchSlidingDoors = &Feature{
		ID:          "sliding-doors",
		Title:       "Sliding Glass Doors",
		Description: "Sliding glass doors are a trademark feature of Ranch style, providing easy access to patios and backyards while visually connecting indoor and outdoor living spaces. This reflects the style's emphasis on casual, indoor-outdoor living.",
		Hit:         []diagram.Rect{hit(250, 460, 100, 90)},
		Shapes: shapes(
			rect(260, 470, 40, 80, 1),
			rect(300, 470, 40, 80, 1),
			line(294, 500, 294, 520, 1.5),
			line(306, 500, 306, 520, 1.5),
		),
		Labels: []diagram.Label{
			labelLeft("M250,500 L220,500 L200,520", 195, 523, "Sliding Glass Doors"),
		},
	}

	ranchEntry = &Feature{
		ID:          "minimal-entry",
		Description: "The front entry of a Ranch home is understated, usually a plain door set flush with the façade or tucked beneath the main roofline. The modest entrance reflects the style's informal, family-centered way of living.",
		Hit:         []diagram.Rect{hit(360, 450, 60, 100)},
		Shapes: shapes(
			rect(370, 460, 40, 90, 1),
			knob(385, 500, 2),
		),
		Labels: []diagram.Label{
			labelRight("M390,550 L390,575 L420,575", 425, 578, "Minimal Entry"),
		},
	}

	ranchGarage = &Feature{
		ID:          "attached-garage",
		Description: "The attached garage became a standard feature of Ranch homes, integrated into the main structure rather than as a separate building. This innovation reflected America's growing car culture in the mid-20th century.",
		Hit:         []diagram.Rect{hit(440, 350, 140, 200)},
		Shapes: shapes(
			rect(450, 360, 120, 190, 1),
			line(450, 400, 570, 400, 0.75),
			line(450, 440, 570, 440, 0.75),
			line(450, 480, 570, 480, 0.75),
			line(450, 520, 570, 520, 0.75),
		),
		Labels: []diagram.Label{
			labelRight("M580,440 L680,440 L700,460", 705, 463, "Attached Garage"),
		},
	}
)

// Ranch is the postwar single-story suburban style.
var Ranch = &Style{
	Slug:    "ranch",
	Name:    "Ranch",
	Era:     "1940s-1970s",
	Summary: "Dominated from the 1940s-1970s, featuring single-story living with open floor plans, low-pitched roofs, and indoor-outdoor integration.",
	Icon:    "🏡",
	Prose: []string{
		"The Ranch style epitomizes mid-20th century American suburban living. Emerging from California in the 1940s, it quickly became the dominant residential style across the country, symbolizing informal living and connection with the outdoors.",
		"These single-story homes are characterized by their long, low-slung profiles, low-pitched roofs with wide eaves, and strong horizontal emphasis. They typically feature open floor plans, large windows, sliding glass doors, and attached garages. The style emphasizes easy indoor-outdoor living with patios and backyards integrated into the overall design.",
	},
	Diagram: Diagram{
		Layers: []Layer{
			Static(diagram.Ground()),
			Region(ranchRoof),
			Static(wall("M200,550 L200,300 L600,300 L600,550 Z", 2)),
			Region(ranchSiding),
			Region(ranchWindows),
			Region(ranchSlidingDoors),
			Region(ranchEntry),
			Region(ranchGarage),
		},
	},
}
