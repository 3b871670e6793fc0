package stair

import (
	"fmt"

	"github.com/matzehuels/stairforge/pkg/errors"
)

// =============================================================================
// Direction - Vertical Run of a Straight Staircase
// =============================================================================

// Direction selects the vertical run of a straight staircase.
// It is ignored for curved staircases, which always ascend.
type Direction string

// Recognized directions. Flat is a legal, explicit zero-rise choice;
// anything outside this set is a validation error, never a silent fallback.
const (
	DirectionUpward   Direction = "upward"
	DirectionDownward Direction = "downward"
	DirectionFlat     Direction = "flat"
)

// Directions lists all recognized directions, in display order.
var Directions = []Direction{DirectionUpward, DirectionDownward, DirectionFlat}

// ParseDirection converts a string to a Direction.
// Returns an INVALID_DIRECTION error for unrecognized values.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionUpward, DirectionDownward, DirectionFlat:
		return Direction(s), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidDirection,
			"unknown direction %q (must be 'upward', 'downward', or 'flat')", s)
	}
}

// riseMultiplier returns the per-step vertical multiplier.
func (d Direction) riseMultiplier() (float64, error) {
	switch d {
	case DirectionUpward:
		return 1, nil
	case DirectionDownward:
		return -1, nil
	case DirectionFlat:
		return 0, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidDirection, "unknown direction %q", string(d))
	}
}

// =============================================================================
// Parameters - Generator Input
// =============================================================================

// Limits for step count. MinStepCount is enforced by validation;
// MaxStepCount is the interactive panel's slider ceiling, not a hard cap of
// the generator itself.
const (
	MinStepCount = 1
	MaxStepCount = 50
)

// Parameters is the complete input of one generator invocation.
// A Parameters value is immutable per call and carries no scene state.
type Parameters struct {
	StepCount     int     `json:"step_count" toml:"step_count"`
	StepHeight    float64 `json:"step_height" toml:"step_height"`
	StepWidth     float64 `json:"step_width" toml:"step_width"`
	StepDepth     float64 `json:"step_depth" toml:"step_depth"`
	StepThickness float64 `json:"step_thickness" toml:"step_thickness"`

	Railings bool `json:"railings" toml:"railings"`

	Curved      bool    `json:"curved" toml:"curved"`
	CurveRadius float64 `json:"curve_radius,omitempty" toml:"curve_radius,omitempty"`

	// Direction applies to straight staircases only.
	Direction Direction `json:"direction,omitempty" toml:"direction,omitempty"`
}

// Default returns the parameter set the CLI and panel start from.
func Default() Parameters {
	return Parameters{
		StepCount:     10,
		StepHeight:    0.3,
		StepWidth:     2.0,
		StepDepth:     0.5,
		StepThickness: 0.05,
		CurveRadius:   5.0,
		Direction:     DirectionUpward,
	}
}

// Validate checks the parameter set and returns a structured validation
// error for the first violated constraint. A nil return guarantees Generate
// will succeed and produce only finite coordinates.
func (p Parameters) Validate() error {
	if p.StepCount < MinStepCount {
		return errors.New(errors.ErrCodeInvalidParameter,
			"step count must be >= %d, got %d", MinStepCount, p.StepCount)
	}

	lengths := []struct {
		name  string
		value float64
	}{
		{"step height", p.StepHeight},
		{"step width", p.StepWidth},
		{"step depth", p.StepDepth},
		{"step thickness", p.StepThickness},
	}
	for _, l := range lengths {
		if l.value <= 0 {
			return errors.New(errors.ErrCodeInvalidParameter,
				"%s must be > 0, got %g", l.name, l.value)
		}
	}

	if p.Curved {
		if p.CurveRadius <= 0 {
			return errors.New(errors.ErrCodeInvalidParameter,
				"curve radius must be > 0 for curved staircases, got %g", p.CurveRadius)
		}
		return nil
	}

	if _, err := p.Direction.riseMultiplier(); err != nil {
		return err
	}
	return nil
}

// Describe returns a short human-readable summary, e.g.
// "12 curved steps, r=5" or "10 straight steps, upward, railings".
func (p Parameters) Describe() string {
	if p.Curved {
		s := fmt.Sprintf("%d curved steps, r=%g", p.StepCount, p.CurveRadius)
		if p.Railings {
			s += ", railings"
		}
		return s
	}
	s := fmt.Sprintf("%d straight steps, %s", p.StepCount, p.Direction)
	if p.Railings {
		s += ", railings"
	}
	return s
}
