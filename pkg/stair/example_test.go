package stair_test

import (
	"fmt"

	"github.com/matzehuels/stairforge/pkg/stair"
)

func ExampleGenerate() {
	params := stair.Parameters{
		StepCount:     3,
		StepHeight:    1,
		StepWidth:     2,
		StepDepth:     1,
		StepThickness: 0.2,
		Direction:     stair.DirectionUpward,
	}

	layout, err := stair.Generate(params)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, s := range layout.Steps() {
		fmt.Printf("%s at (%g, %g, %g)\n", s.Name, s.Position.X, s.Position.Y, s.Position.Z)
	}
	// Output:
	// step_1 at (0, 0, 0)
	// step_2 at (0, 1, 1)
	// step_3 at (0, 2, 2)
}

func ExampleGenerate_railings() {
	params := stair.Parameters{
		StepCount:     10,
		StepHeight:    0.3,
		StepWidth:     2,
		StepDepth:     0.5,
		StepThickness: 0.05,
		Railings:      true,
		Direction:     stair.DirectionUpward,
	}

	layout, err := stair.Generate(params)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range layout.RailingPrimitives() {
		fmt.Printf("%s: %gx%gx%g at x=%g\n", r.Name, r.Width, r.Height, r.Depth, r.Position.X)
	}
	// Output:
	// railing_left: 0.1x3.05x5 at x=-1.05
	// railing_right: 0.1x3.05x5 at x=1.05
}
