package outline

import (
	"strings"
	"testing"

	"github.com/matzehuels/stairforge/pkg/scene"
	"github.com/matzehuels/stairforge/pkg/stair"
)

func testLayout(t *testing.T) scene.Layout {
	t.Helper()
	p := stair.Default()
	p.StepCount = 3
	p.Railings = true
	l, err := stair.Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testLayout(t), Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("missing digraph header")
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("missing closing brace")
	}

	// Group nodes with grey fill, primitive leaves plain.
	if !strings.Contains(dot, `"Modular_Stairs" [label="Modular_Stairs", style="rounded,filled", fillcolor=lightgrey];`) {
		t.Error("missing stairs group node")
	}
	if !strings.Contains(dot, `"step_1" [label="step_1"];`) {
		t.Error("missing step node")
	}

	// Hierarchy edges: parent group to child group, group to primitive.
	if !strings.Contains(dot, `"Modular_Stairs" -> "Railings";`) {
		t.Error("missing group parenting edge")
	}
	if !strings.Contains(dot, `"Modular_Stairs" -> "step_1";`) {
		t.Error("missing primitive membership edge")
	}
	if !strings.Contains(dot, `"Railings" -> "railing_left";`) {
		t.Error("missing railing membership edge")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testLayout(t), Options{Detailed: true})

	if !strings.Contains(dot, "kind: box") {
		t.Error("detailed labels should include the primitive kind")
	}
	if !strings.Contains(dot, "dims: 2 x 0.05 x 0.5") {
		t.Error("detailed labels should include box dimensions")
	}
}

func TestToDOTDetailedSpheres(t *testing.T) {
	p := stair.Default()
	p.Curved = true
	p.Railings = true
	p.StepCount = 4
	l, err := stair.Generate(p)
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(l, Options{Detailed: true})
	if !strings.Contains(dot, "kind: sphere") {
		t.Error("detailed labels should include the sphere kind")
	}
	if !strings.Contains(dot, "radius: 0.05") {
		t.Error("detailed labels should include the marker radius")
	}
	if !strings.Contains(dot, "yaw: ") {
		t.Error("detailed labels should include yaw for rotated steps")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	in := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(in)) != string(in) {
		t.Error("SVG without viewBox should pass through unchanged")
	}
}
