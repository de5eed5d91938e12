// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidTaskType is returned when a task type is not one of the known variants.
	ErrInvalidTaskType = fmt.Errorf("%w: invalid task type", ErrValidation)

	// ErrInvalidTaskStatus is returned when a task status is not valid.
	ErrInvalidTaskStatus = fmt.Errorf("%w: invalid task status", ErrValidation)

	// ErrInvalidDueAt is returned when a due timestamp cannot be parsed.
	ErrInvalidDueAt = fmt.Errorf("%w: invalid due_at", ErrValidation)

	// ErrDueAtNotInFuture is returned when a due timestamp is not strictly
	// later than the creation instant. It wraps ErrInvalidDueAt.
	ErrDueAtNotInFuture = fmt.Errorf("%w: not in the future", ErrInvalidDueAt)

	// ErrEmptyApplicationID is returned when a task has no application.
	ErrEmptyApplicationID = fmt.Errorf("%w: application ID cannot be empty", ErrValidation)

	// ErrEmptyTenantID is returned when a task or application has no tenant.
	ErrEmptyTenantID = fmt.Errorf("%w: tenant ID cannot be empty", ErrValidation)
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}
