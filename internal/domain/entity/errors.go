package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the upstream clients and the use cases.
var (
	// ErrNotFound indicates that the upstream reported the requested resource as missing.
	ErrNotFound = errors.New("not found")

	// ErrUnprocessable indicates that the upstream rejected the request input.
	ErrUnprocessable = errors.New("unprocessable input")

	// ErrServiceUnavailable indicates a transport failure or an upstream outage.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets callers match any ValidationError with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
