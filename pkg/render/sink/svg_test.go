package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/stairforge/pkg/errors"
	"github.com/matzehuels/stairforge/pkg/scene"
	"github.com/matzehuels/stairforge/pkg/stair"
)

func mustGenerate(t *testing.T, p stair.Parameters) scene.Layout {
	t.Helper()
	l, err := stair.Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return l
}

func TestParseView(t *testing.T) {
	tests := []struct {
		input   string
		want    View
		wantErr bool
	}{
		{"plan", ViewPlan, false},
		{"elevation", ViewElevation, false},
		{"isometric", "", true},
		{"", "", true},
		{"Plan", "", true},
	}

	for _, tt := range tests {
		got, err := ParseView(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseView(%q): expected error", tt.input)
			} else if errors.GetCode(err) != errors.ErrCodeInvalidView {
				t.Errorf("ParseView(%q): code = %s", tt.input, errors.GetCode(err))
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseView(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseView(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderSVGPlan(t *testing.T) {
	p := stair.Default()
	p.Railings = true
	l := mustGenerate(t, p)

	out, err := RenderSVG(l)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	svg := string(out)

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("missing svg root element")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing tag")
	}

	// 10 steps + 2 railing boxes, all rects in plan view.
	if got := strings.Count(svg, "<rect"); got != 12 {
		t.Errorf("rect count = %d, want 12", got)
	}
	if strings.Contains(svg, "<circle") {
		t.Error("straight staircase should not produce circles")
	}

	// Railings use the darker fill.
	if !strings.Contains(svg, railingFill) {
		t.Error("railing fill color missing")
	}
	if !strings.Contains(svg, `id="prim-step_1"`) {
		t.Error("primitive ids missing")
	}
}

func TestRenderSVGElevation(t *testing.T) {
	l := mustGenerate(t, stair.Default())

	plan, err := RenderSVG(l, WithView(ViewPlan))
	if err != nil {
		t.Fatal(err)
	}
	elev, err := RenderSVG(l, WithView(ViewElevation))
	if err != nil {
		t.Fatal(err)
	}
	if string(plan) == string(elev) {
		t.Error("plan and elevation views should differ")
	}
}

func TestRenderSVGCurvedRotation(t *testing.T) {
	p := stair.Default()
	p.Curved = true
	p.StepCount = 4
	l := mustGenerate(t, p)

	out, err := RenderSVG(l, WithView(ViewPlan))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `transform="rotate(`) {
		t.Error("curved steps should carry a rotation in plan view")
	}

	// Elevation draws the unrotated profile.
	out, err = RenderSVG(l, WithView(ViewElevation))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), `transform="rotate(`) {
		t.Error("elevation view should not rotate")
	}
}

func TestRenderSVGCurvedRailingMarkers(t *testing.T) {
	p := stair.Default()
	p.Curved = true
	p.Railings = true
	p.StepCount = 4
	l := mustGenerate(t, p)

	out, err := RenderSVG(l)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(out), "<circle"); got != 5 {
		t.Errorf("circle count = %d, want 5 railing markers", got)
	}
}

func TestRenderSVGLabels(t *testing.T) {
	l := mustGenerate(t, stair.Default())

	plain, err := RenderSVG(l)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(plain), "<text") {
		t.Error("labels should be off by default")
	}

	labelled, err := RenderSVG(l, WithLabels())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(labelled), ">step_1</text>") {
		t.Error("labels missing with WithLabels")
	}
}

func TestRenderSVGScale(t *testing.T) {
	l := mustGenerate(t, stair.Default())

	small, err := RenderSVG(l, WithScale(10))
	if err != nil {
		t.Fatal(err)
	}
	big, err := RenderSVG(l, WithScale(100))
	if err != nil {
		t.Fatal(err)
	}
	if len(small) == 0 || string(small) == string(big) {
		t.Error("scale should change the output")
	}

	// Non-positive scale falls back to the default.
	def, err := RenderSVG(l, WithScale(-1))
	if err != nil {
		t.Fatal(err)
	}
	want, err := RenderSVG(l)
	if err != nil {
		t.Fatal(err)
	}
	if string(def) != string(want) {
		t.Error("invalid scale should use the default")
	}
}

func TestRenderSVGInvalidView(t *testing.T) {
	l := mustGenerate(t, stair.Default())

	_, err := RenderSVG(l, WithView("oblique"))
	if err == nil {
		t.Fatal("expected error for invalid view")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidView {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidView)
	}
}

func TestRenderSVGInvalidLayout(t *testing.T) {
	bad := scene.Layout{Primitives: []scene.Primitive{{Name: "", Kind: scene.KindBox}}}
	if _, err := RenderSVG(bad); err == nil {
		t.Error("invalid layout should be rejected")
	}
}
