// Package errors provides structured error types for pcba.
//
// Every failure that aborts a run carries a machine-readable [Code] so the
// CLI and tests can tell a missing column from a bad number without parsing
// messages:
//
//   - MISSING_FIELD: a required column is absent from an input row
//   - INVALID_DIMENSION: a numeric column does not parse
//   - MISSING_INPUT_FILE: board.csv or components.csv is absent
//   - INVALID_RULE: a rotation rule line is malformed
//   - INVALID_PATH / INVALID_CONFIG: bad arguments or configuration
//
// Classification misses and rotation-rule misses are not errors and have no
// code.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingField, "row %d: missing field %q", row, name)
//	if errors.Is(err, errors.ErrCodeMissingField) {
//	    // handle
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidDimension, parseErr, "field %q", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input data errors
	ErrCodeMissingField     Code = "MISSING_FIELD"
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInvalidRule      Code = "INVALID_RULE"

	// Filesystem and argument errors
	ErrCodeMissingInputFile Code = "MISSING_INPUT_FILE"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
	Field   string // Input column the error refers to (data errors only)
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// MissingField builds a MISSING_FIELD error for an absent input column.
func MissingField(field string) *Error {
	return &Error{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("missing field %q", field),
		Field:   field,
	}
}

// InvalidDimension builds an INVALID_DIMENSION error for a value that does
// not parse as a number.
func InvalidDimension(field, value string) *Error {
	return &Error{
		Code:    ErrCodeInvalidDimension,
		Message: fmt.Sprintf("field %q: %q is not a number", field, value),
		Field:   field,
	}
}

// FieldOf returns the input field an error refers to, if any.
func FieldOf(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) && e.Field != "" {
		return e.Field, true
	}
	return "", false
}
