package errors

import "fmt"

// ConfigError reports an unusable configuration value.
// It wraps ErrInvalidConfig unless a more specific cause is given.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("tapestry: invalid configuration for %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying cause, defaulting to ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidConfig
}

// Code implements the TapestryError interface.
func (e *ConfigError) Code() ErrorCode {
	return ErrCodeConfig
}

var _ TapestryError = (*ConfigError)(nil)

// NewConfigError creates a configuration error for field.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewConfigErrorWithCause creates a configuration error wrapping cause.
func NewConfigErrorWithCause(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Err: cause}
}
