package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "error without details",
			err:      NewDomainError("SA-TEST-1000", "test message"),
			expected: "[SA-TEST-1000] test message",
		},
		{
			name:     "error with details",
			err:      NewDomainError("SA-TEST-1001", "test message").WithDetails("extra info"),
			expected: "[SA-TEST-1001] test message: extra info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	err1 := NewDomainError("SA-TEST-1000", "message 1")
	err2 := NewDomainError("SA-TEST-1000", "message 2")
	err3 := NewDomainError("SA-TEST-1001", "message 1")

	if !errors.Is(err1, err2) {
		t.Error("errors.Is should return true for same error code")
	}
	if errors.Is(err1, err3) {
		t.Error("errors.Is should return false for different error code")
	}
	if errors.Is(err1, fmt.Errorf("some error")) {
		t.Error("errors.Is should return false for non-DomainError")
	}
}

func TestDomainError_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("verify: %w", ErrInvalidFormat.WithDetails("expected 10 characters, got 5"))

	if !errors.Is(err, ErrInvalidFormat) {
		t.Error("errors.Is should see through fmt wrapping and details")
	}
	if errors.Is(err, ErrBadSaltLength) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := ErrEntropy.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestDomainError_WithDetailsDoesNotMutate(t *testing.T) {
	_ = ErrMissingKey.WithDetails("something")

	if ErrMissingKey.Details != "" {
		t.Errorf("sentinel Details = %q, want empty", ErrMissingKey.Details)
	}
}

func TestIsDomainError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrInvalidRange)

	if !IsDomainError(err, "") {
		t.Error("IsDomainError(err, \"\") = false, want true")
	}
	if !IsDomainError(err, "SA-TOKN-4003") {
		t.Error("IsDomainError(err, code) = false, want true")
	}
	if IsDomainError(err, "SA-TOKN-4000") {
		t.Error("IsDomainError(err, other) = true, want false")
	}
	if IsDomainError(errors.New("plain"), "") {
		t.Error("IsDomainError(plain) = true, want false")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := GetErrorCode(ErrTypeMismatch); got != "SA-TOKN-4005" {
		t.Errorf("GetErrorCode() = %q, want %q", got, "SA-TOKN-4005")
	}
	if got := GetErrorCode(errors.New("plain")); got != "" {
		t.Errorf("GetErrorCode(plain) = %q, want empty", got)
	}
}

func TestErrorCodesUnique(t *testing.T) {
	all := []*DomainError{
		ErrInvalidFormat,
		ErrBadSaltLength,
		ErrNegativeIdentity,
		ErrInvalidRange,
		ErrRangeTooLarge,
		ErrTypeMismatch,
		ErrMissingKey,
		ErrInvalidArgument,
		ErrMissingArgument,
		ErrEntropy,
	}

	seen := make(map[string]bool)
	for _, e := range all {
		if seen[e.Code] {
			t.Errorf("duplicate error code %s", e.Code)
		}
		seen[e.Code] = true
	}
}
