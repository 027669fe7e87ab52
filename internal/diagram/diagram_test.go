package diagram

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return b.String()
}

func TestRect_Node(t *testing.T) {
	got := render(t, Rect{X: 10, Y: 20, W: 30.5, H: 40, Width: 1, Fill: FillSurface}.Node())
	for _, want := range []string{`<rect`, `x="10"`, `y="20"`, `width="30.5"`, `height="40"`, `stroke-width="1"`, `class="surface"`} {
		if !strings.Contains(got, want) {
			t.Errorf("rect %q missing %q", got, want)
		}
	}
}

func TestFill_Variants(t *testing.T) {
	cases := []struct {
		fill Fill
		want string
		none string
	}{
		{FillInherit, "<path", "fill="},
		{FillNone, `fill="none"`, ""},
		{FillInk, `fill="currentColor"`, ""},
		{PatternFill("siding"), `fill="url(#siding)"`, ""},
	}
	for _, tc := range cases {
		got := render(t, Path{D: "M0,0 L1,1", Fill: tc.fill}.Node())
		if !strings.Contains(got, tc.want) {
			t.Errorf("fill %q: %q missing %q", tc.fill, got, tc.want)
		}
		if tc.none != "" && strings.Contains(got, tc.none) {
			t.Errorf("fill %q: %q should not contain %q", tc.fill, got, tc.none)
		}
	}
}

func TestLine_OmitsZeroWidth(t *testing.T) {
	got := render(t, Line{X1: 1, Y1: 2, X2: 3, Y2: 4}.Node())
	if strings.Contains(got, "stroke-width") {
		t.Errorf("zero width should inherit stroke width, got %q", got)
	}
}

func TestLabel_Node(t *testing.T) {
	got := render(t, Label{Leader: "M1,1 L2,2", X: 5, Y: 6, Anchor: AnchorEnd, Text: "Tower & Turret"}.Node())
	for _, want := range []string{`marker-end="url(#arrowhead)"`, `text-anchor="end"`, `Tower &amp; Turret`} {
		if !strings.Contains(got, want) {
			t.Errorf("label %q missing %q", got, want)
		}
	}
}

func TestFrame_IncludesDefs(t *testing.T) {
	siding := Pattern{ID: "siding", W: 8, H: 8, Shapes: []Shape{Path{D: "M0,4 L8,4", Width: 0.5}}}
	got := render(t, Frame("Ranch elevation", []Pattern{siding}, Ground().Node()))
	for _, want := range []string{`viewBox="0 0 800 600"`, `<marker id="arrowhead"`, `<pattern id="siding"`, `<title>Ranch elevation</title>`, `<line`} {
		if !strings.Contains(got, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestRepeat(t *testing.T) {
	shapes := Repeat(4, func(i int) Shape {
		return Rect{X: float64(i * 10), Y: 0, W: 5, H: 5}
	})
	if len(shapes) != 4 {
		t.Fatalf("len %d, want 4", len(shapes))
	}
	if r := shapes[3].(Rect); r.X != 30 {
		t.Errorf("shapes[3].X %v, want 30", r.X)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	if !r.Contains(15, 15) {
		t.Error("point inside should be contained")
	}
	if r.Contains(31, 15) {
		t.Error("point outside should not be contained")
	}
}
