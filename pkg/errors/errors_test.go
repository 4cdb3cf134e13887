package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("key", "cannot be empty")

	want := `tapestry: validation error for field "key": cannot be empty`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Code() != ErrCodeValidation {
		t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeValidation)
	}
	if err.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
	}
}

func TestValidationErrorWithCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewValidationErrorWithCause("depth", "not a number", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}

	wrapped := fmt.Errorf("building request: %w", err)
	valErr, ok := AsValidationError(wrapped)
	if !ok {
		t.Fatal("AsValidationError should find the wrapped error")
	}
	if valErr.Field != "depth" {
		t.Errorf("Field = %q, want depth", valErr.Field)
	}
	if !IsValidationError(wrapped) {
		t.Error("IsValidationError() = false, want true")
	}
	if IsValidationError(cause) {
		t.Error("IsValidationError() = true for plain error")
	}
}

func TestConfigError(t *testing.T) {
	t.Run("defaults to ErrInvalidConfig", func(t *testing.T) {
		err := NewConfigError("base_url", "must be absolute")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Error("ConfigError should wrap ErrInvalidConfig")
		}
		if err.Code() != ErrCodeConfig {
			t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeConfig)
		}
	})

	t.Run("specific cause", func(t *testing.T) {
		err := NewConfigErrorWithCause("base_url", "missing", ErrMissingBaseURL)
		if !errors.Is(err, ErrMissingBaseURL) {
			t.Error("ConfigError should wrap its cause")
		}
		if errors.Is(err, ErrInvalidConfig) {
			t.Error("ConfigError with a cause should not report ErrInvalidConfig")
		}
	})
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError("key", "bad"), ErrCodeValidation},
		{"wrapped validation", fmt.Errorf("x: %w", NewValidationError("key", "bad")), ErrCodeValidation},
		{"config", NewConfigError("partner_id", "bad"), ErrCodeConfig},
		{"sentinel base URL", ErrMissingBaseURL, ErrCodeConfig},
		{"plain", errors.New("plain"), ErrCodeInternal},
		{"nil request", ErrNilRequest, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	if err := Join(); err != nil {
		t.Errorf("Join() = %v, want nil", err)
	}
	if err := Join(nil, nil); err != nil {
		t.Errorf("Join(nil, nil) = %v, want nil", err)
	}

	single := NewValidationError("key", "bad")
	if err := Join(nil, single); err != single {
		t.Errorf("Join(nil, single) = %v, want the single error", err)
	}

	first := NewValidationError("key", "cannot be empty")
	second := NewValidationError("depth", "must be non-negative")
	err := Join(first, second)

	if !strings.HasPrefix(err.Error(), "tapestry: multiple validation errors: ") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !strings.Contains(err.Error(), "cannot be empty") || !strings.Contains(err.Error(), "must be non-negative") {
		t.Errorf("Error() = %q, want both messages", err.Error())
	}
	if !errors.Is(err, second) {
		t.Error("errors.Is should see every joined error")
	}
	if CodeOf(err) != ErrCodeValidation {
		t.Errorf("CodeOf() = %q, want %q", CodeOf(err), ErrCodeValidation)
	}

	mixed := Join(first, NewConfigError("base_url", "bad"))
	if CodeOf(mixed) != ErrCodeConfig {
		t.Errorf("CodeOf(mixed) = %q, want %q", CodeOf(mixed), ErrCodeConfig)
	}
}
