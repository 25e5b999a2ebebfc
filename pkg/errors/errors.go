// Package errors provides structured error types for photosheet.
//
// Every failure the pipeline can hit is terminal, so the codes exist to give
// the CLI a human-readable message and to let tests assert on the failure
// kind without matching strings.
//
// # Error Codes
//
//   - INPUT_*: the source photo could not be found or decoded
//   - OUTPUT_*: the layout could not be written
//   - INVALID_*: configuration or argument validation failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "rows must be positive, got %d", rows)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInputNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInputNotFound   Code = "INPUT_NOT_FOUND"
	ErrCodeInputUnreadable Code = "INPUT_UNREADABLE"

	// Output errors
	ErrCodeOutputWriteFailure Code = "OUTPUT_WRITE_FAILURE"

	// Validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
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
// For *Error types the code prefix is replaced by a short label and the
// cause is kept, since it usually carries the OS-level reason.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	label, ok := labels[e.Code]
	if !ok {
		label = "error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", label, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", label, e.Message)
}

var labels = map[Code]string{
	ErrCodeInputNotFound:      "input not found",
	ErrCodeInputUnreadable:    "could not read image",
	ErrCodeOutputWriteFailure: "could not save output",
	ErrCodeInvalidInput:       "invalid input",
	ErrCodeInvalidConfig:      "invalid configuration",
	ErrCodeInvalidFormat:      "invalid format",
	ErrCodeInternal:           "internal error",
}
