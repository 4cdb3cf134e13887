package tapestry

import (
	pkgerrors "github.com/jdziat/tapestry-go/pkg/errors"
)

// ErrorCode represents a category of error for logging.
type ErrorCode = pkgerrors.ErrorCode

// Error codes for categorization.
const (
	ErrCodeConfig     = pkgerrors.ErrCodeConfig
	ErrCodeValidation = pkgerrors.ErrCodeValidation
	ErrCodeInternal   = pkgerrors.ErrCodeInternal
)

// TapestryError is the common interface for all SDK errors.
//
// Example:
//
//	var tapErr tapestry.TapestryError
//	if errors.As(err, &tapErr) {
//	    log.Printf("Error code: %s", tapErr.Code())
//	}
type TapestryError = pkgerrors.TapestryError

// ValidationError represents a validation error for a request parameter.
type ValidationError = pkgerrors.ValidationError

// ConfigError reports an unusable configuration value.
type ConfigError = pkgerrors.ConfigError

// MultiError holds several errors reported together.
type MultiError = pkgerrors.MultiError

// Sentinel errors.
var (
	ErrMissingBaseURL = pkgerrors.ErrMissingBaseURL
	ErrInvalidConfig  = pkgerrors.ErrInvalidConfig
	ErrNilRequest     = pkgerrors.ErrNilRequest
)

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return pkgerrors.NewValidationError(field, message)
}

// NewValidationErrorWithCause creates a new validation error with an underlying cause.
func NewValidationErrorWithCause(field, message string, cause error) *ValidationError {
	return pkgerrors.NewValidationErrorWithCause(field, message, cause)
}

// AsValidationError extracts a ValidationError from the error chain.
// Returns the ValidationError and true if found, nil and false otherwise.
//
// Example:
//
//	if valErr, ok := tapestry.AsValidationError(err); ok {
//	    log.Printf("bad %s: %s", valErr.Field, valErr.Message)
//	}
func AsValidationError(err error) (*ValidationError, bool) {
	return pkgerrors.AsValidationError(err)
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	return pkgerrors.IsValidationError(err)
}

// ErrorCodeOf returns the error code for err, or "" for a nil error.
func ErrorCodeOf(err error) ErrorCode {
	return pkgerrors.CodeOf(err)
}
