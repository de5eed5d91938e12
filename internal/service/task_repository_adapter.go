package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/domain"
	"github.com/learnlynk/task-api/internal/store"
)

// NewTaskRepositoryAdapter creates a new adapter that combines a
// store.ApplicationStore and a store.TaskStore into a TaskRepository.
func NewTaskRepositoryAdapter(
	applicationStore store.ApplicationStore,
	taskStore store.TaskStore,
	db *sql.DB,
) TaskRepository {
	return &taskRepositoryAdapter{
		applicationStore: applicationStore,
		taskStore:        taskStore,
		db:               db,
	}
}

// taskRepositoryAdapter adapts the task and application stores to the TaskRepository interface
type taskRepositoryAdapter struct {
	applicationStore store.ApplicationStore
	taskStore        store.TaskStore
	db               *sql.DB
}

// GetApplicationForShare implements TaskRepository.GetApplicationForShare
func (a *taskRepositoryAdapter) GetApplicationForShare(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return a.applicationStore.GetByIDForShare(ctx, id)
}

// CreateTask implements TaskRepository.CreateTask
func (a *taskRepositoryAdapter) CreateTask(ctx context.Context, task *domain.Task) error {
	return a.taskStore.Create(ctx, task)
}

// ListOpenDueBetween implements TaskRepository.ListOpenDueBetween
func (a *taskRepositoryAdapter) ListOpenDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Task, error) {
	return a.taskStore.ListOpenDueBetween(ctx, from, to)
}

// UpdateTaskStatus implements TaskRepository.UpdateTaskStatus
func (a *taskRepositoryAdapter) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error {
	return a.taskStore.UpdateStatus(ctx, id, status)
}

// WithTx implements TaskRepository.WithTx
func (a *taskRepositoryAdapter) WithTx(tx *sql.Tx) TaskRepository {
	return &taskRepositoryAdapter{
		applicationStore: a.applicationStore.WithTx(tx),
		taskStore:        a.taskStore.WithTx(tx),
		db:               a.db,
	}
}

// RunInTx implements TaskRepository.RunInTx
func (a *taskRepositoryAdapter) RunInTx(
	ctx context.Context,
	fn func(ctx context.Context, repo TaskRepository) error,
) error {
	return store.RunInTransaction(ctx, a.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, a.WithTx(tx))
	})
}
