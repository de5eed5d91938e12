package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create inserts a new task. The store generates the ID and the
	// created/updated timestamps and writes them back into task.
	// Returns domain validation errors if the task is invalid and
	// ErrInvalidEntity if the database rejects it on a constraint.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListOpenDueBetween returns tasks that are not completed and whose due
	// time lies within [from, to], ordered by due time ascending.
	// Returns an empty slice when nothing matches.
	ListOpenDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Task, error)

	// UpdateStatus sets the status of a task.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
