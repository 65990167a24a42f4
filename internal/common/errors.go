// Package common defines shared constants and sentinel errors used across
// the contactdesk server layers. Callers should use errors.Is to match these
// values; lower layers wrap them with fmt.Errorf("...: %w", ...).
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// ErrPersistence marks a failed store operation.
	ErrPersistence = errors.New("persistence error")

	// Validation errors (missing or malformed input).
	ErrValidation = errors.New("validation error")

	// Credential errors.
	ErrAuthentication = errors.New("invalid email or password")
	ErrHashing        = errors.New("hashing error")

	// Access errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Token errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrMalformedToken = errors.New("malformed token")
)

// ValidationError is a rejected input with a client-facing message.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Msg string
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
