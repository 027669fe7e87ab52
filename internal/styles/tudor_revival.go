package styles

import "archstyles/internal/diagram"

var (
	tudorRoof = &Feature{
		ID:          "steep-roof",
		Title:       "Steeply Pitched Roof",
		Description: "The steeply pitched roof with one or more prominent cross gables is perhaps the most defining characteristic of Tudor Revival homes. These dramatic rooflines create a distinctly medieval silhouette and were originally designed to shed snow and rain in the English climate.",
		Hit:         []diagram.Rect{hit(150, 100, 500, 150)},
		Shapes: shapes(
			path("M200,250 L400,100 L600,250", 1.5),
		),
		Labels: []diagram.Label{
			labelRight("M400,140 L400,110 L430,110", 435, 113, "Steeply Pitched Roof"),
		},
	}

	tudorTimbering = &Feature{
		ID:          "half-timbering",
		Description: "Decorative half-timbering is the most recognizable feature of Tudor Revival homes. These exposed wood framework elements are set against stucco or brick infill to create a distinctive visual pattern, mimicking the construction techniques of medieval English buildings.",
		Hit:         []diagram.Rect{hit(240, 150, 100, 200), hit(460, 150, 100, 200), hit(240, 250, 320, 100)},
		Shapes: shapes(
			line(300, 150, 300, 350, 2),
			line(400, 150, 400, 350, 2),
			line(500, 150, 500, 350, 2),
			line(250, 250, 550, 250, 2),
			line(300, 150, 400, 250, 2),
			line(400, 150, 500, 250, 2),
			line(300, 250, 400, 350, 2),
			line(400, 250, 500, 350, 2),
		),
		Labels: []diagram.Label{
			labelRight("M560,300 L630,300 L650,320", 655, 323, "Half-Timbering"),
		},
	}

	tudorWindows = &Feature{
		ID:          "tall-windows",
		Title:       "Tall Narrow Windows",
		Description: "Tudor Revival homes typically feature tall, narrow windows, often grouped in sets of two or three. They commonly have multiple small panes in a diamond or rectangular pattern, creating visual interest while referencing medieval fenestration patterns.",
		Hit:         []diagram.Rect{hit(240, 360, 80, 140), hit(480, 360, 80, 140)},
		Shapes: shapes(
			rect(250, 370, 60, 120, 1),
			line(280, 370, 280, 490, 0.75),
			rect(490, 370, 60, 120, 1),
			line(520, 370, 520, 490, 0.75),
		),
		Labels: []diagram.Label{
			labelLeft("M240,420 L220,420 L200,440", 195, 443, "Tall Narrow Windows"),
		},
	}

	tudorChimney = &Feature{
		ID:          "massive-chimney",
		Description: "Prominent chimneys are a hallmark of Tudor Revival architecture. These chimneys are typically large, made of brick or stone, and often placed prominently on the front facade. Many feature decorative chimney pots or elaborately patterned brickwork.",
		Hit:         []diagram.Rect{hit(340, 40, 120, 110)},
		Shapes: shapes(
			path("M350,150 L350,60 L450,60 L450,150", 1.5),
			path("M340,60 L400,40 L460,60", 1),
			line(350, 100, 450, 100, 0.75),
			line(350, 130, 450, 130, 0.75),
		),
		Labels: []diagram.Label{
			labelRight("M460,80 L500,80 L520,60", 525, 63, "Massive Chimney"),
		},
	}

	tudorDoor = &Feature{
		ID:          "arched-door",
		Description: "Entry doors in Tudor Revival homes are set beneath a rounded or softly pointed Tudor arch, often within a projecting entry vestibule. Heavy board doors with decorative iron strap hinges complete the medieval character of the entrance.",
		Hit:         []diagram.Rect{hit(360, 400, 80, 150)},
		Shapes: shapes(
			path("M370,550 L370,420 Q400,400 430,420 L430,550", 1.5),
			knob(385, 480, 3),
		),
		Labels: []diagram.Label{
			labelLeft("M360,520 L340,520 L320,540", 315, 543, "Arched Door"),
		},
	}
)

// TudorRevival is the medieval-English revival style.
var TudorRevival = &Style{
	Slug:    "tudor-revival",
	Name:    "Tudor Revival",
	Era:     "1920s-1940s",
	Summary: "Popularized in the 1920s-1940s with decorative half-timbering, steep gabled roofs, tall narrow windows, and prominent chimneys.",
	Icon:    "🏰",
	Prose: []string{
		"Tudor Revival architecture romanticizes medieval English building traditions, bringing a European flair to American neighborhoods. This style became especially popular in prosperous suburbs during the 1920s and 1930s.",
		"The style is immediately recognizable by its steeply pitched gabled roofs, decorative half-timbering with stucco or brick infill, tall narrow windows (often grouped) with multi-pane glazing, massive chimneys (often crowned with decorative chimney pots), and entry doors with a characteristic rounded arch.",
	},
	Diagram: Diagram{
		Layers: []Layer{
			Static(
				diagram.Ground(),
				wall("M200,550 L200,250 L600,250 L600,550 Z", 2),
			),
			Region(tudorChimney),
			Region(tudorRoof),
			Region(tudorTimbering),
			Region(tudorWindows),
			Region(tudorDoor),
		},
	},
}
