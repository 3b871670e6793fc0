// Package errors provides structured error types for the Stairforge application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidParameter, "step count must be >= 1, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidParameter) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "write artifact %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidView      Code = "INVALID_VIEW"
	ErrCodeInvalidPreset    Code = "INVALID_PRESET"
	ErrCodeInvalidLayout    Code = "INVALID_LAYOUT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodePresetNotFound Code = "PRESET_NOT_FOUND"
	ErrCodeLayoutNotFound Code = "LAYOUT_NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsValidation reports whether err carries any INVALID_* code.
// Callers use this to distinguish rejected input from internal failures,
// e.g. the API maps validation errors to 400 and everything else to 500.
func IsValidation(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case ErrCodeInvalidParameter, ErrCodeInvalidDirection, ErrCodeInvalidFormat,
		ErrCodeInvalidView, ErrCodeInvalidPreset, ErrCodeInvalidLayout, ErrCodeInvalidPath:
		return true
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
