package stair

import (
	"fmt"
	"math"

	"github.com/matzehuels/stairforge/pkg/scene"
)

// Railing geometry constants shared by straight and curved runs.
const (
	// railThickness is the cross-section of a straight railing box.
	railThickness = 0.1

	// railOffset pushes a straight railing half its thickness beyond the
	// step edge so box faces touch instead of overlapping.
	railOffset = railThickness / 2

	// markerRadius is the radius of one curved-railing sphere marker.
	markerRadius = 0.05
)

// RailingHeight returns the total railing height for a parameter set:
// the full rise of the staircase plus one tread thickness.
func RailingHeight(p Parameters) float64 {
	return p.StepHeight*float64(p.StepCount) + p.StepThickness
}

// Generate computes the staircase layout for a parameter set.
//
// The result lists primitives in creation order: steps first, then railing
// primitives. Generate is pure and deterministic; it returns a validation
// error for malformed parameters and never produces a degenerate layout.
func Generate(p Parameters) (scene.Layout, error) {
	if err := p.Validate(); err != nil {
		return scene.Layout{}, err
	}

	l := scene.Layout{
		StairsGroup: scene.GroupStairs,
		Groups:      []scene.Group{{Name: scene.GroupStairs}},
	}

	if p.Curved {
		generateCurvedSteps(&l, p)
	} else {
		generateStraightSteps(&l, p)
	}

	if p.Railings {
		l.RailingsGroup = scene.GroupRailings
		l.Groups = append(l.Groups, scene.Group{
			Name:   scene.GroupRailings,
			Parent: scene.GroupStairs,
		})
		if p.Curved {
			generateCurvedRailing(&l, p)
		} else {
			generateStraightRailing(&l, p)
		}
	}

	return l, nil
}

// generateStraightSteps places step i at (0, height·i·dir, depth·i).
func generateStraightSteps(l *scene.Layout, p Parameters) {
	dir, _ := p.Direction.riseMultiplier() // validated
	for i := 0; i < p.StepCount; i++ {
		l.Primitives = append(l.Primitives, scene.Primitive{
			Name:   stepName(i),
			Kind:   scene.KindBox,
			Width:  p.StepWidth,
			Height: p.StepThickness,
			Depth:  p.StepDepth,
			Position: scene.Vec3{
				X: 0,
				Y: p.StepHeight * float64(i) * dir,
				Z: p.StepDepth * float64(i),
			},
			Group: scene.GroupStairs,
		})
	}
}

// generateCurvedSteps distributes steps over a full circle, each yawed to
// face tangentially along the arc. The yaw is absolute, not cumulative.
func generateCurvedSteps(l *scene.Layout, p Parameters) {
	angleStep := 360.0 / float64(p.StepCount)
	for i := 0; i < p.StepCount; i++ {
		angleDeg := angleStep * float64(i)
		angle := angleDeg * math.Pi / 180
		l.Primitives = append(l.Primitives, scene.Primitive{
			Name:   stepName(i),
			Kind:   scene.KindBox,
			Width:  p.StepWidth,
			Height: p.StepThickness,
			Depth:  p.StepDepth,
			Position: scene.Vec3{
				X: math.Cos(angle) * p.CurveRadius,
				Y: p.StepHeight * float64(i),
				Z: math.Sin(angle) * p.CurveRadius,
			},
			Yaw:   -angleDeg,
			Group: scene.GroupStairs,
		})
	}
}

// generateStraightRailing adds the two full-length railing boxes flanking a
// straight run. Both share the same height and run; only the x offset
// differs.
func generateStraightRailing(l *scene.Layout, p Parameters) {
	height := RailingHeight(p)
	run := p.StepDepth * float64(p.StepCount)
	xOffset := p.StepWidth/2 + railOffset
	y := height/2 - p.StepThickness/2
	z := run / 2

	sides := []struct {
		name string
		x    float64
	}{
		{"railing_left", -xOffset},
		{"railing_right", xOffset},
	}
	for _, s := range sides {
		l.Primitives = append(l.Primitives, scene.Primitive{
			Name:     s.name,
			Kind:     scene.KindBox,
			Width:    railThickness,
			Height:   height,
			Depth:    run,
			Position: scene.Vec3{X: s.x, Y: y, Z: z},
			Group:    scene.GroupRailings,
		})
	}
}

// generateCurvedRailing traces the outer edge of a curved run with
// step_count+1 sphere markers, one per step plus a closing marker at the
// full turn. The markers are deliberately disconnected; no swept rail mesh
// is produced.
func generateCurvedRailing(l *scene.Layout, p Parameters) {
	angleStep := 360.0 / float64(p.StepCount)
	outerRadius := p.CurveRadius + p.StepWidth/2
	for i := 0; i <= p.StepCount; i++ {
		angle := angleStep * float64(i) * math.Pi / 180
		l.Primitives = append(l.Primitives, scene.Primitive{
			Name:   fmt.Sprintf("railing_marker_%d", i+1),
			Kind:   scene.KindSphere,
			Radius: markerRadius,
			Position: scene.Vec3{
				X: math.Cos(angle) * outerRadius,
				Y: p.StepHeight * float64(i),
				Z: math.Sin(angle) * outerRadius,
			},
			Group: scene.GroupRailings,
		})
	}
}

func stepName(i int) string {
	return fmt.Sprintf("step_%d", i+1)
}
