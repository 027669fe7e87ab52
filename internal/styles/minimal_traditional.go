package styles

import "archstyles/internal/diagram"

var (
	minimalRoof = &Feature{
		ID:          "roof-pitch",
		Title:       "Low/Intermediate Roof Pitch",
		Description: "The low to intermediate roof pitch is steeper than Ranch styles but not as steep as Tudor or Colonial Revivals. This moderate pitch was both economical and created a traditional silhouette.",
		Hit:         []diagram.Rect{hit(150, 150, 500, 100)},
		Shapes: shapes(
			path("M180,250 L400,150 L620,250", 1.5),
		),
		Labels: []diagram.Label{
			labelRight("M400,240 L400,210 L430,210", 435, 213, "Low/Intermediate Roof Pitch"),
		},
	}

	minimalEaves = &Feature{
		ID:          "small-eaves",
		Description: "Unlike previous styles with wide overhanging eaves, Minimal Traditional homes feature small or minimal eaves. This economical design detail reduced construction costs and materials during the Depression and post-war eras.",
		Hit:         []diagram.Rect{hit(170, 235, 40, 30), hit(590, 235, 40, 30)},
		Shapes: shapes(
			path("M180,250 L200,250 L200,256 L184,256 Z", 1),
			path("M620,250 L600,250 L600,256 L616,256 Z", 1),
		),
		Labels: []diagram.Label{
			labelLeft("M175,255 L150,255 L130,275", 125, 278, "Small Eaves"),
		},
	}

	minimalPorch = &Feature{
		ID:          "small-porch",
		Description: "Front porches are small or reduced to a simple covered stoop, often with a modest gable and slender supports. The pared-down entry kept construction affordable while still marking the front door.",
		Hit:         []diagram.Rect{hit(340, 385, 120, 165)},
		Shapes: shapes(
			path("M350,550 L350,410 L450,410 L450,550", 1),
			path("M350,410 L400,390 L450,410", 1),
			rect(360, 410, 10, 140, 0.75),
			rect(430, 410, 10, 140, 0.75),
		),
		Labels: []diagram.Label{
			labelRight("M460,520 L640,520 L660,500", 665, 503, "Small Porch"),
		},
	}

	minimalWindows = &Feature{
		ID:          "simple-windows",
		Description: "Windows are typically double-hung with simple, unadorned surrounds. They lack the decorative elements of earlier styles, reflecting the economical approach to construction and the stripped-down aesthetic.",
		Hit:         []diagram.Rect{hit(240, 300, 100, 140), hit(460, 300, 100, 140)},
		Shapes: shapes(
			rect(250, 310, 80, 120, 1),
			line(290, 310, 290, 430, 0.75),
			line(250, 370, 330, 370, 0.75),
			rect(470, 310, 80, 120, 1),
			line(510, 310, 510, 430, 0.75),
			line(470, 370, 550, 370, 0.75),
		),
		Labels: []diagram.Label{
			labelLeft("M250,370 L220,370 L200,390", 195, 393, "Simple Windows"),
		},
	}

	minimalDoor = &Feature{
		ID:          "basic-door",
		Description: "Entry doors are simple and functional, often with minimal ornamentation. They may include small glass panes or sidelights but generally lack elaborate detailing.",
		Hit:         []diagram.Rect{hit(370, 450, 60, 100)},
		Shapes: shapes(
			rect(380, 460, 40, 90, 1),
			knob(395, 500, 2),
		),
		Labels: []diagram.Label{
			labelLeft("M370,480 L330,480 L310,500", 305, 503, "Basic Door"),
		},
	}
)

// MinimalTraditional is the Depression-era simplified traditional style.
var MinimalTraditional = &Style{
	Slug:    "minimal-traditional",
	Name:    "Minimal Traditional",
	Era:     "1930s-1950s",
	Summary: "Emerged in the 1930s-1950s, offering simplified traditional details, modest size, low or intermediate roof pitches, and minimal ornamentation.",
	Icon:    "🏘️",
	Prose: []string{
		"The Minimal Traditional style emerged during the Great Depression and became very popular in the post-World War II building boom. This style represents a simplified version of prewar traditional homes, adapted to economic constraints and changing tastes.",
		"These homes are characterized by their modest size, simple floor plans, and lack of architectural detail. They typically feature low or intermediate roof pitches, small eaves, and traditional details stripped down to their basic forms. While less decorative than earlier styles, they maintain a traditional feel through their use of materials and basic forms.",
	},
	Diagram: Diagram{
		Layers: []Layer{
			Static(
				diagram.Ground(),
				wall("M200,550 L200,250 L600,250 L600,550 Z", 2),
			),
			Region(minimalRoof),
			Region(minimalEaves),
			Region(minimalPorch),
			Region(minimalWindows),
			Region(minimalDoor),
		},
	},
}
