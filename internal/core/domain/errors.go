// Package domain defines the core value types of SurveyAuth.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
// Codes have the form SA-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "SA-TOKN-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support. Two domain errors match when their
// codes match, regardless of details or cause.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Token Errors (TOKN)
// ============================================================================

var (
	// ErrInvalidFormat indicates a token string whose length does not
	// equal saltLength+hashLength.
	ErrInvalidFormat = NewDomainError("SA-TOKN-4000", "invalid token format")

	// ErrBadSaltLength indicates a salt whose length does not match the
	// issuer's configured salt length.
	ErrBadSaltLength = NewDomainError("SA-TOKN-4001", "salt does not have the configured length")

	// ErrNegativeIdentity indicates an identity below zero after flooring.
	ErrNegativeIdentity = NewDomainError("SA-TOKN-4002", "identity must not be negative")

	// ErrInvalidRange indicates a range whose lower bound exceeds its upper bound.
	ErrInvalidRange = NewDomainError("SA-TOKN-4003", "invalid identity range")

	// ErrRangeTooLarge indicates a range with more identities than the
	// issuer is allowed to materialise.
	ErrRangeTooLarge = NewDomainError("SA-TOKN-4004", "identity range too large")

	// ErrTypeMismatch indicates a comparison against a value that is not a Token.
	ErrTypeMismatch = NewDomainError("SA-TOKN-4005", "unable to compare non-token values")
)

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrMissingKey indicates an issuer constructed without a private key.
	ErrMissingKey = NewDomainError("SA-CONF-4001", "a private key is required")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("SA-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("SA-ARG-1002", "missing required argument")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrEntropy indicates the secure random source could not be read.
	ErrEntropy = NewDomainError("SA-SYS-5001", "secure random source unavailable")
)
