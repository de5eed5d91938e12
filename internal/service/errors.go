// Package service provides application-level services for creating and completing follow-up tasks.
package service

import (
	"errors"
	"fmt"

	"github.com/learnlynk/task-api/internal/domain"
	"github.com/learnlynk/task-api/internal/store"
)

// Sentinel errors returned by TaskService. Each corresponds to exactly one
// client-facing message; the API layer maps them with errors.Is.
//
// Error handling principles:
// 1. Validation failures are returned as sentinels, optionally wrapping the domain cause
// 2. Unexpected store failures are wrapped in TaskServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
var (
	// ErrMissingFields indicates that application_id, task_type or due_at was empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidTaskType indicates that task_type is not one of the supported kinds.
	ErrInvalidTaskType = errors.New("invalid task_type")

	// ErrInvalidDueAt indicates that due_at did not parse or is not in the future.
	ErrInvalidDueAt = errors.New("due_at must be a valid future timestamp")

	// ErrInvalidApplication indicates that application_id does not reference a
	// usable application. Whether the row was missing or the lookup failed is
	// only visible in the logs.
	ErrInvalidApplication = errors.New("invalid application_id")

	// ErrTenantOverride indicates the caller tried to supply tenant_id.
	ErrTenantOverride = errors.New("tenant_id cannot be set by the caller")

	// ErrTaskNotFound indicates that the task does not exist.
	ErrTaskNotFound = errors.New("task not found")
)

// TaskServiceError wraps unexpected failures from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "complete_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// Known sentinel errors are returned directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, store.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidTaskType),
		errors.Is(err, ErrInvalidDueAt),
		errors.Is(err, ErrInvalidApplication),
		errors.Is(err, ErrTenantOverride):
		return err
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// invalidTaskType wraps a domain parse failure so both the service sentinel
// and the domain cause remain reachable.
func invalidTaskType(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidTaskType, err)
}

func invalidDueAt(err error) error {
	if err == nil {
		err = domain.ErrInvalidDueAt
	}
	return fmt.Errorf("%w: %w", ErrInvalidDueAt, err)
}
