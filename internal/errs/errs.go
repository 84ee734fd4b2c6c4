// Package errs defines the error taxonomy shared by every storefront component.
// Each category maps to one recovery strategy at the boundary: validation and
// authentication failures abort the operation with no state change, not-found
// renders an empty view, and storage parse failures fall back to defaults.
package errs

import (
	"errors"
	"fmt"
)

// Code classifies an error into one of the storefront categories.
type Code int

const (
	// CodeValidation marks a missing or invalid required field.
	CodeValidation Code = iota + 1
	// CodeAuthentication marks rejected credentials.
	CodeAuthentication
	// CodeNotFound marks an unknown product or order id.
	CodeNotFound
	// CodeStorageParse marks corrupt persisted data.
	CodeStorageParse
)

func (c Code) String() string {
	switch c {
	case CodeValidation:
		return "validation"
	case CodeAuthentication:
		return "authentication"
	case CodeNotFound:
		return "not_found"
	case CodeStorageParse:
		return "storage_parse"
	default:
		return "unknown"
	}
}

// Error carries a category code, a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is checks against a category.
var (
	ErrValidation     = &Error{Code: CodeValidation, Message: "validation failed"}
	ErrAuthentication = &Error{Code: CodeAuthentication, Message: "authentication failed"}
	ErrNotFound       = &Error{Code: CodeNotFound, Message: "not found"}
	ErrStorageParse   = &Error{Code: CodeStorageParse, Message: "corrupt stored data"}
)

// Validation creates a validation error with a formatted message
func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Authentication creates an authentication error with a formatted message
func Authentication(format string, args ...any) *Error {
	return &Error{Code: CodeAuthentication, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not-found error with a formatted message
func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// StorageParse wraps a decoding failure from the persistent store
func StorageParse(message string, cause error) *Error {
	return &Error{Code: CodeStorageParse, Message: message, Cause: cause}
}

// CodeOf returns the category of err, or 0 when err is not a storefront error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}
