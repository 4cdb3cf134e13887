package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a category of error for logging.
type ErrorCode string

// Error codes for categorization.
const (
	ErrCodeConfig     ErrorCode = "CONFIG"     // Configuration errors
	ErrCodeValidation ErrorCode = "VALIDATION" // Request validation errors
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal SDK errors
)

// TapestryError is the common interface for all SDK errors.
type TapestryError interface {
	error

	// Code returns a machine-readable error code for categorization.
	Code() ErrorCode
}

// Sentinel errors.
var (
	ErrMissingBaseURL = errors.New("tapestry: base URL is required")
	ErrInvalidConfig  = errors.New("tapestry: invalid configuration")
	ErrNilRequest     = errors.New("tapestry: request cannot be nil")
)

// CodeOf returns the error code of the first TapestryError in err's chain.
// Errors that carry no code are reported as ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var tapErr TapestryError
	if errors.As(err, &tapErr) {
		return tapErr.Code()
	}
	if errors.Is(err, ErrMissingBaseURL) || errors.Is(err, ErrInvalidConfig) {
		return ErrCodeConfig
	}
	return ErrCodeInternal
}

// Join combines errs into a single error. Nil entries are skipped.
// It returns nil when there is nothing to report and the error itself
// when there is exactly one.
func Join(errs ...error) error {
	nonNil := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	}
	return &MultiError{Errors: nonNil}
}

// MultiError holds several errors reported together.
type MultiError struct {
	Errors []error
}

// Error implements the error interface.
func (e *MultiError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("tapestry: multiple validation errors: %s", strings.Join(msgs, "; "))
}

// Unwrap returns the wrapped errors so errors.Is and errors.As see each of them.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// Code returns ErrCodeValidation when every wrapped error is a validation
// error, and the code of the first wrapped error otherwise.
func (e *MultiError) Code() ErrorCode {
	for _, err := range e.Errors {
		if code := CodeOf(err); code != ErrCodeValidation {
			return code
		}
	}
	return ErrCodeValidation
}

var _ TapestryError = (*MultiError)(nil)
