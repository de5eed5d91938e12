package api

import (
	"errors"
	"net/http"

	"github.com/learnlynk/task-api/internal/api/shared"
	"github.com/learnlynk/task-api/internal/domain"
	"github.com/learnlynk/task-api/internal/service"
)

// Client-facing error messages. These strings are part of the HTTP contract.
const (
	MsgMethodNotAllowed   = "Method not allowed"
	MsgTenantOverride     = "tenant_id cannot be set by the caller"
	MsgMissingFields      = "Missing required fields"
	MsgInvalidTaskType    = "Invalid task_type"
	MsgInvalidDueAt       = "due_at must be a valid future ISO timestamp"
	MsgInvalidApplication = "Invalid application_id"
	MsgDatabaseError      = "Database Error"
	MsgInternalError      = "Internal server error"
	MsgInvalidTaskID      = "Invalid task id"
	MsgTaskNotFound       = "Task not found"
	MsgInvalidTimezone    = "Invalid tz"
	MsgLoadTasksFailed    = "Failed to load tasks"
	MsgUpdateTaskFailed   = "Failed to update task"
)

// Errors raised by the HTTP layer itself, before a service is involved.
// An undecodable body is treated like any other unexpected failure: 500.
var (
	ErrInvalidRequestBody = errors.New("invalid request body")
	ErrInvalidTimezone    = errors.New("invalid time zone")
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidTimezone),
		errors.Is(err, service.ErrTenantOverride),
		errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidTaskType),
		errors.Is(err, service.ErrInvalidDueAt),
		errors.Is(err, service.ErrInvalidApplication),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrTaskNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the fixed client message for err.
// Store and transport details never appear in the result.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalError
	}

	switch {
	case errors.Is(err, ErrInvalidRequestBody):
		return MsgInternalError
	case errors.Is(err, ErrInvalidTimezone):
		return MsgInvalidTimezone
	case errors.Is(err, service.ErrTenantOverride):
		return MsgTenantOverride
	case errors.Is(err, service.ErrMissingFields):
		return MsgMissingFields
	case errors.Is(err, service.ErrInvalidTaskType):
		return MsgInvalidTaskType
	case errors.Is(err, service.ErrInvalidDueAt):
		return MsgInvalidDueAt
	case errors.Is(err, service.ErrInvalidApplication):
		return MsgInvalidApplication
	case errors.Is(err, domain.ErrInvalidID):
		return MsgInvalidTaskID
	case errors.Is(err, service.ErrTaskNotFound):
		return MsgTaskNotFound
	}

	var serviceErr *service.TaskServiceError
	if errors.As(err, &serviceErr) {
		switch serviceErr.Operation {
		case "create_task":
			return MsgDatabaseError
		case "list_due_today":
			return MsgLoadTasksFailed
		case "complete_task":
			return MsgUpdateTaskFailed
		}
	}

	return MsgInternalError
}

// HandleAPIError writes the mapped status and safe message for err and logs
// the redacted detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, opts ...shared.ResponseOption) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}

// MethodNotAllowed responds with the JSON 405 body used across the API.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
