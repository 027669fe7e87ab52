package styles

import "archstyles/internal/diagram"

var (
	classicalFacade = &Feature{
		ID:          "symmetrical-facade",
		Description: "Symmetry is a defining principle of Classical Revival architecture. The façade is typically arranged with perfect bilateral symmetry, with a central entrance and balanced arrangement of windows and other elements on either side.",
		Hit:         []diagram.Rect{hit(200, 200, 400, 350)},
		Shapes: shapes(
			path("M200,550 L200,200 L600,200 L600,550 Z", 2),
		),
		Labels: []diagram.Label{
			labelRight("M600,470 L640,470 L660,490", 665, 493, "Symmetrical Facade"),
		},
	}

	classicalPediment = &Feature{
		ID:          "triangular-pediment",
		Description: "The triangular pediment is derived directly from classical Greek and Roman temples. In Classical Revival homes, it typically crowns the main façade and sometimes appears over windows and doors. This element creates a strong visual focus and conveys a sense of formal dignity.",
		Hit:         []diagram.Rect{hit(150, 100, 500, 100)},
		Shapes: diagram.Shapes(
			shapes(path("M180,200 L400,100 L620,200 Z", 1.5)),
			diagram.Repeat(20, func(i int) diagram.Shape {
				return rect(200+float64(i)*20, 190, 10, 5, 0.5)
			}),
		),
		Labels: []diagram.Label{
			labelRight("M400,140 L400,120 L440,120", 445, 123, "Triangular Pediment"),
		},
	}

	classicalColumns = &Feature{
		ID:          "prominent-columns",
		Description: "Columns are a quintessential element of Classical Revival architecture. These vertical elements are often full-height and may be in the Doric, Ionic, or Corinthian orders. They provide structural support while creating a grand, temple-like appearance.",
		Hit:         []diagram.Rect{hit(240, 200, 80, 350), hit(480, 200, 80, 350)},
		Shapes: shapes(
			path("M250,550 L250,200 L310,200 L310,550", 1.5),
			path("M240,210 L320,210", 1),
			path("M245,205 L315,205", 1),
			path("M240,540 L320,540", 1),
			path("M245,545 L315,545", 1),
			path("M490,550 L490,200 L550,200 L550,550", 1.5),
			path("M480,210 L560,210", 1),
			path("M485,205 L555,205", 1),
			path("M480,540 L560,540", 1),
			path("M485,545 L555,545", 1),
		),
		Labels: []diagram.Label{
			labelLeft("M240,340 L220,340 L200,360", 195, 363, "Prominent Columns"),
		},
	}

	classicalWindows = &Feature{
		ID:          "large-windows",
		Description: "Large, symmetrically placed rectangular windows are characteristic of Classical Revival architecture. They typically have multiple panes and are arranged in balanced patterns across the façade, reinforcing the style's emphasis on symmetry and proportional harmony.",
		Hit:         []diagram.Rect{hit(340, 250, 120, 160)},
		Shapes: shapes(
			rect(350, 260, 100, 140, 1),
			line(400, 260, 400, 400, 0.75),
			line(350, 330, 450, 330, 0.75),
		),
		Labels: []diagram.Label{
			labelRight("M460,300 L630,300 L650,280", 655, 283, "Large Windows"),
		},
	}

	classicalDoor = &Feature{
		ID:          "entry-door",
		Description: "The formal entry door sits on the central axis of the façade, often framed by pilasters, sidelights, or a fanlight. Paneled doors with restrained classical trim reinforce the symmetry and ceremony of the entrance.",
		Hit:         []diagram.Rect{hit(360, 450, 80, 100)},
		Shapes: shapes(
			rect(370, 460, 60, 90, 1),
			line(400, 460, 400, 550, 0.75),
			line(370, 505, 430, 505, 0.75),
			knob(415, 500, 2),
		),
		Labels: []diagram.Label{
			labelLeft("M360,500 L340,500 L330,520", 325, 523, "Entry Door"),
		},
	}
)

// ClassicalRevival is the Greek and Roman revival style.
var ClassicalRevival = &Style{
	Slug:    "classical-revival",
	Name:    "Classical Revival",
	Era:     "1920s-1950s",
	Summary: "Flourished in the 1920s-1950s, characterized by symmetrical facades, prominent columns, and details inspired by Greek and Roman architecture.",
	Icon:    "🏛️",
	Prose: []string{
		"Classical Revival architecture draws inspiration from the grand traditions of ancient Greece and Rome. This style represented a return to architectural formality and grandeur in reaction to the more informal Victorian and Arts and Crafts styles.",
		"Key features include symmetrical facades, prominent columns and pilasters (often full-height), triangular pediments, large rectangular windows, and elaborate classical details such as dentil moldings and cornices. The overall effect is one of dignity, permanence, and classical proportions.",
	},
	Diagram: Diagram{
		Layers: []Layer{
			Static(diagram.Ground()),
			Region(classicalFacade),
			Region(classicalPediment),
			Region(classicalColumns),
			Region(classicalWindows),
			Region(classicalDoor),
		},
	},
}
