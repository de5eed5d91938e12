package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskType is the closed set of follow-up actions a task can represent.
type TaskType string

// Known task types. No other value is ever persisted.
const (
	TaskTypeCall   TaskType = "call"
	TaskTypeEmail  TaskType = "email"
	TaskTypeReview TaskType = "review"
)

// ParseTaskType converts s into a TaskType.
// Matching is exact: "Call" or " call" are rejected.
func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(s)
	if !t.Valid() {
		return "", ErrInvalidTaskType
	}
	return t, nil
}

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeCall, TaskTypeEmail, TaskTypeReview:
		return true
	default:
		return false
	}
}

// TaskStatus represents where a task is in its lifecycle.
type TaskStatus string

// Possible task status values
const (
	TaskStatusOpen      TaskStatus = "open"
	TaskStatusCompleted TaskStatus = "completed"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusOpen || s == TaskStatusCompleted
}

// Task is a unit of follow-up work attached to an application.
// Once created only Status changes.
type Task struct {
	ID            uuid.UUID  `json:"id"`
	ApplicationID uuid.UUID  `json:"application_id"`
	TenantID      uuid.UUID  `json:"tenant_id"`
	Type          TaskType   `json:"type"`
	DueAt         time.Time  `json:"due_at"`
	Status        TaskStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewTask builds an open task for app. The tenant is always copied from the
// application. dueAt must be strictly after now.
//
// The ID is left empty; it is assigned by the store on insert.
func NewTask(app *Application, taskType TaskType, dueAt, now time.Time) (*Task, error) {
	if app == nil {
		return nil, ErrEmptyApplicationID
	}
	if err := app.Validate(); err != nil {
		return nil, err
	}
	if !taskType.Valid() {
		return nil, ErrInvalidTaskType
	}
	if !dueAt.After(now) {
		return nil, ErrDueAtNotInFuture
	}

	return &Task{
		ApplicationID: app.ID,
		TenantID:      app.TenantID,
		Type:          taskType,
		DueAt:         dueAt.UTC(),
		Status:        TaskStatusOpen,
	}, nil
}

// Validate checks the fields a stored task must carry.
func (t *Task) Validate() error {
	if t.ApplicationID == uuid.Nil {
		return ErrEmptyApplicationID
	}
	if t.TenantID == uuid.Nil {
		return ErrEmptyTenantID
	}
	if !t.Type.Valid() {
		return ErrInvalidTaskType
	}
	if !t.Status.Valid() {
		return ErrInvalidTaskStatus
	}
	if t.DueAt.IsZero() {
		return ErrInvalidDueAt
	}
	return nil
}

// dueAtLayouts are the ISO-8601 shapes accepted for due_at. Layouts without a
// zone are read as UTC.
var dueAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDueAt parses an ISO-8601 timestamp and returns it in UTC.
func ParseDueAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDueAt
	}
	for _, layout := range dueAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDueAt
}

// DayWindow returns the first and last millisecond of the calendar day that
// contains now, as observed in loc. Both bounds are inclusive.
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}
