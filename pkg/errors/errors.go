// Package errors provides structured error types for prismview.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the pipeline and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (viewport, format, scene)
//   - Layout precondition codes (TOO_MANY_COLORS, EMPTY_RING,
//     GRADIENT_UNDERRUN, GRID_UNDERFLOW) raised by the layout engine when a
//     color hierarchy does not fit the generator it was handed to
//   - NOT_FOUND, UNSUPPORTED, INTERNAL_ERROR
//
// Layout precondition failures are deterministic: retrying the same call
// reproduces the same error, so callers should fall back or abort instead.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeEmptyRing, "ring %d has no colors", k)
//	if errors.Is(err, errors.ErrCodeEmptyRing) {
//	    // Handle malformed hierarchy
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "encode %s", format)
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
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidViewport  Code = "INVALID_VIEWPORT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidScene     Code = "INVALID_SCENE"
	ErrCodeInvalidVizType   Code = "INVALID_VIZ_TYPE"
	ErrCodeInvalidMetric    Code = "INVALID_METRIC"
	ErrCodeInvalidHierarchy Code = "INVALID_HIERARCHY"

	// Layout precondition violations
	ErrCodeTooManyColors    Code = "TOO_MANY_COLORS"
	ErrCodeEmptyRing        Code = "EMPTY_RING"
	ErrCodeGradientUnderrun Code = "GRADIENT_UNDERRUN"
	ErrCodeGridUnderflow    Code = "GRID_UNDERFLOW"

	// Resource errors
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeUnsupported Code = "UNSUPPORTED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Is reports whether any *Error in err's chain carries the given code.
// Unlike GetCode it does not stop at the outermost *Error, so a layout
// failure wrapped by a scene or pipeline error is still recognized.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the error code of the outermost *Error, if available.
// Returns empty string if the chain holds no *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// RootCode returns the code of the innermost *Error in the chain.
// The innermost code is usually the most specific one (EMPTY_RING rather
// than the INVALID_HIERARCHY it was wrapped in).
func RootCode(err error) Code {
	var code Code
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		code = e.Code
		err = e.Cause
	}
	return code
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

// IsLayoutPrecondition reports whether err is one of the deterministic
// layout failures caused by a malformed hierarchy or viewport.
func IsLayoutPrecondition(err error) bool {
	for _, code := range []Code{
		ErrCodeTooManyColors,
		ErrCodeEmptyRing,
		ErrCodeGradientUnderrun,
		ErrCodeGridUnderflow,
		ErrCodeInvalidHierarchy,
		ErrCodeInvalidViewport,
	} {
		if Is(err, code) {
			return true
		}
	}
	return false
}
