package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNewError(t *testing.T) {
	err := New(ErrCodeInvalidParameter, "step count must be >= 1, got %d", 0)

	if err.Code != ErrCodeInvalidParameter {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidParameter)
	}
	if err.Message != "step count must be >= 1, got 0" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Error("Cause should be nil for New")
	}

	want := "INVALID_PARAMETER: step count must be >= 1, got 0"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapError(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "write artifact %s", "out.svg")

	if err.Cause != cause {
		t.Error("Cause not preserved")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	want := "INTERNAL_ERROR: write artifact out.svg: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidDirection, "unknown direction %q", "sideways")

	if !Is(err, ErrCodeInvalidDirection) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInvalidParameter) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidDirection) {
		t.Error("Is should not match plain errors")
	}

	// Is should unwrap through fmt.Errorf chains.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeInvalidDirection) {
		t.Error("Is should unwrap wrapped errors")
	}
}

func TestIsValidation(t *testing.T) {
	cases := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidParameter, true},
		{ErrCodeInvalidDirection, true},
		{ErrCodeInvalidFormat, true},
		{ErrCodeInvalidView, true},
		{ErrCodeInvalidPreset, true},
		{ErrCodeInvalidLayout, true},
		{ErrCodeInvalidPath, true},
		{ErrCodeNotFound, false},
		{ErrCodePresetNotFound, false},
		{ErrCodeInternal, false},
		{ErrCodeUnsupported, false},
	}

	for _, tc := range cases {
		err := New(tc.code, "test")
		if got := IsValidation(err); got != tc.want {
			t.Errorf("IsValidation(%s) = %v, want %v", tc.code, got, tc.want)
		}
	}

	if IsValidation(stderrors.New("plain")) {
		t.Error("IsValidation should be false for plain errors")
	}
}

func TestGetCode(t *testing.T) {
	err := New(ErrCodePresetNotFound, "no preset named %q", "attic")
	if got := GetCode(err); got != ErrCodePresetNotFound {
		t.Errorf("GetCode = %s", got)
	}

	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode for plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidParameter, "step width must be > 0")
	if got := UserMessage(err); got != "step width must be > 0" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage for plain error = %q", got)
	}
}
