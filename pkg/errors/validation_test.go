package errors

import (
	"strings"
	"testing"
)

func TestValidatePresetName(t *testing.T) {
	valid := []string{"attic", "spiral_01", "Back-porch", "loft.v2"}
	for _, name := range valid {
		if err := ValidatePresetName(name); err != nil {
			t.Errorf("ValidatePresetName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []struct {
		name   string
		reason string
	}{
		{"", "empty"},
		{strings.Repeat("a", 65), "too long"},
		{"foo/bar", "path separator"},
		{"foo\\bar", "backslash"},
		{"..", "traversal"},
		{"a..b", "traversal"},
		{".hidden", "hidden file"},
		{"has\x00null", "control char"},
		{"has\ttab", "control char"},
	}
	for _, tc := range invalid {
		err := ValidatePresetName(tc.name)
		if err == nil {
			t.Errorf("ValidatePresetName(%q) should fail (%s)", tc.name, tc.reason)
			continue
		}
		if !Is(err, ErrCodeInvalidPreset) {
			t.Errorf("ValidatePresetName(%q) code = %s, want INVALID_PRESET", tc.name, GetCode(err))
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	if err := ValidateOutputPath("out/stairs.svg"); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}

	if err := ValidateOutputPath(""); !Is(err, ErrCodeInvalidPath) {
		t.Error("empty path should be rejected")
	}
	if err := ValidateOutputPath(strings.Repeat("x", 501)); !Is(err, ErrCodeInvalidPath) {
		t.Error("overlong path should be rejected")
	}
	if err := ValidateOutputPath("bad\x00path"); !Is(err, ErrCodeInvalidPath) {
		t.Error("null byte should be rejected")
	}
}

func TestValidateGroupName(t *testing.T) {
	valid := []string{"Modular_Stairs", "Railings", "g1"}
	for _, name := range valid {
		if err := ValidateGroupName(name); err != nil {
			t.Errorf("ValidateGroupName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "1stairs", "has space", "has-dash", "weird$"}
	for _, name := range invalid {
		if err := ValidateGroupName(name); !Is(err, ErrCodeInvalidLayout) {
			t.Errorf("ValidateGroupName(%q) should fail with INVALID_LAYOUT", name)
		}
	}
}
