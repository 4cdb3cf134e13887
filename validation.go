package tapestry

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	pkgconfig "github.com/jdziat/tapestry-go/pkg/config"
	pkgerrors "github.com/jdziat/tapestry-go/pkg/errors"
)

// Limits enforced by the strict request builder and ValidateRequest.
const (
	MaxKeyLength      = pkgconfig.MaxKeyLength
	MaxValueLength    = pkgconfig.MaxValueLength
	MaxAudienceLength = pkgconfig.MaxAudienceLength
	MaxDepth          = pkgconfig.MaxDepth
)

// Validator accumulates validation errors.
// Builders can embed this to gain validation capabilities.
type Validator struct {
	errors []error
}

// AddError adds a validation error. Nil errors are ignored.
func (v *Validator) AddError(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

// AddFieldError adds a validation error for a specific field.
func (v *Validator) AddFieldError(field, message string) {
	v.errors = append(v.errors, NewValidationError(field, message))
}

// HasErrors returns true if there are any validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all accumulated validation errors.
func (v *Validator) Errors() []error {
	return v.errors
}

// ClearErrors clears all validation errors.
func (v *Validator) ClearErrors() {
	v.errors = nil
}

// CombinedError returns a single error combining all validation errors,
// or nil if there are no errors.
func (v *Validator) CombinedError() error {
	return pkgerrors.Join(v.errors...)
}

// Validation rules

// ValidateDataKey validates a data key. Keys must be non-empty, must not
// contain the key/value separator and must fit within MaxKeyLength.
func ValidateDataKey(key string) error {
	if key == "" {
		return NewValidationError("key", "cannot be empty")
	}
	if strings.Contains(key, pkgconfig.DataSeparator) {
		return NewValidationError("key", fmt.Sprintf("cannot contain %q", pkgconfig.DataSeparator))
	}
	if utf8.RuneCountInString(key) > MaxKeyLength {
		return NewValidationError("key", fmt.Sprintf("exceeds maximum length of %d characters", MaxKeyLength))
	}
	return nil
}

// ValidateDataValue validates a data value. Empty values are allowed.
func ValidateDataValue(key, value string) error {
	if utf8.RuneCountInString(value) > MaxValueLength {
		return NewValidationError("data."+key, fmt.Sprintf("exceeds maximum length of %d characters", MaxValueLength))
	}
	return nil
}

// ValidateAudience validates a single audience identifier.
func ValidateAudience(audience string) error {
	if audience == "" {
		return NewValidationError("audience", "cannot be empty")
	}
	if strings.Contains(audience, pkgconfig.AudienceSeparator) {
		return NewValidationError("audience", fmt.Sprintf("cannot contain %q", pkgconfig.AudienceSeparator))
	}
	if utf8.RuneCountInString(audience) > MaxAudienceLength {
		return NewValidationError("audience", fmt.Sprintf("exceeds maximum length of %d characters", MaxAudienceLength))
	}
	return nil
}

// ValidateDepth validates that depth is within [0, MaxDepth].
func ValidateDepth(depth int) error {
	if depth < 0 {
		return NewValidationError("depth", "must be non-negative")
	}
	if depth > MaxDepth {
		return NewValidationError("depth", fmt.Sprintf("must be at most %d", MaxDepth))
	}
	return nil
}

// ValidateRequest checks every parameter of an already built request
// against the same rules the strict builder applies.
func ValidateRequest(req *Request) error {
	if req == nil {
		return ErrNilRequest
	}

	var v Validator
	for _, key := range slices.Sorted(maps.Keys(req.data)) {
		v.AddError(ValidateDataKey(key))
		v.AddError(ValidateDataValue(key, req.data[key]))
	}
	for _, aud := range req.audiences {
		v.AddError(ValidateAudience(aud))
	}
	if depth, ok := req.Depth(); ok {
		v.AddError(ValidateDepth(depth))
	}
	return v.CombinedError()
}
