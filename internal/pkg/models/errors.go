package models

import (
	"errors"
	"fmt"
)

// Error kinds
var (
	ErrValidation     = errors.New("validation error")
	ErrNetwork        = errors.New("network error")
	ErrAuth           = errors.New("request rejected")
	ErrSessionExpired = errors.New("session expired")
)

// Verification flow errors
var (
	ErrResendNotAllowed = errors.New("resend not allowed during cooldown")
	ErrInvalidStage     = errors.New("operation not allowed in current stage")
	ErrStaleResponse    = errors.New("response belongs to an abandoned verification")
	ErrFlowClosed       = errors.New("verification flow closed")
)

// Session errors
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionNotFound  = errors.New("session not found")
)

// AuthError is the typed error surfaced by the auth flow. Message is what
// the user sees: the server text verbatim or a per-operation default.
type AuthError struct {
	Kind    error
	Op      string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap exposes both the kind and the cause to errors.Is
func (e *AuthError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NewValidationError builds a local, pre-network error
func NewValidationError(op, message string) *AuthError {
	return &AuthError{Kind: ErrValidation, Op: op, Message: message}
}

// UserMessage returns the human readable message carried by err, or
// fallback when err is not an AuthError.
func UserMessage(err error, fallback string) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	return fallback
}
