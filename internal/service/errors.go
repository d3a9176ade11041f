package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the request carries no identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when the identity has no user record.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when input fails validation.
	ErrValidation = errors.New("validation failed")
)

// ValidationError names the offending input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
