package stair

import (
	"testing"

	"github.com/matzehuels/stairforge/pkg/errors"
)

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"upward", "downward", "flat"} {
		d, err := ParseDirection(s)
		if err != nil {
			t.Errorf("ParseDirection(%q): %v", s, err)
		}
		if string(d) != s {
			t.Errorf("ParseDirection(%q) = %q", s, d)
		}
	}

	for _, s := range []string{"", "up", "Upward", "sideways"} {
		if _, err := ParseDirection(s); !errors.Is(err, errors.ErrCodeInvalidDirection) {
			t.Errorf("ParseDirection(%q) should fail with INVALID_DIRECTION", s)
		}
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate: %v", err)
	}

	curved := Default()
	curved.Curved = true
	if err := curved.Validate(); err != nil {
		t.Errorf("Default() with Curved should validate: %v", err)
	}
}

func TestDescribe(t *testing.T) {
	p := Default()
	if got := p.Describe(); got != "10 straight steps, upward" {
		t.Errorf("Describe = %q", got)
	}

	p.Railings = true
	if got := p.Describe(); got != "10 straight steps, upward, railings" {
		t.Errorf("Describe = %q", got)
	}

	p.Curved = true
	p.CurveRadius = 5
	if got := p.Describe(); got != "10 curved steps, r=5, railings" {
		t.Errorf("Describe = %q", got)
	}
}
