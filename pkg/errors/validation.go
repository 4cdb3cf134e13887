package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error for a request parameter.
type ValidationError struct {
	Field   string
	Message string
	Err     error // Underlying error for wrapping
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("tapestry: validation error for field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code returns the error code for the validation error.
// Implements the TapestryError interface.
func (e *ValidationError) Code() ErrorCode {
	return ErrCodeValidation
}

// Ensure ValidationError implements TapestryError.
var _ TapestryError = (*ValidationError)(nil)

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorWithCause creates a new validation error with an underlying cause.
func NewValidationErrorWithCause(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     cause,
	}
}

// AsValidationError extracts a ValidationError from the error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
