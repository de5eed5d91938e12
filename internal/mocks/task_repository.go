package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/domain"
	"github.com/learnlynk/task-api/internal/service"
)

// MockTaskRepository implements service.TaskRepository for testing.
// RunInTx invokes the callback with the mock itself unless RunInTxFn is set,
// and records whether the callback's error would have rolled back.
type MockTaskRepository struct {
	GetApplicationForShareFn func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	CreateTaskFn             func(ctx context.Context, task *domain.Task) error
	ListOpenDueBetweenFn     func(ctx context.Context, from, to time.Time) ([]*domain.Task, error)
	UpdateTaskStatusFn       func(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error
	RunInTxFn                func(ctx context.Context, fn func(ctx context.Context, repo service.TaskRepository) error) error

	// Call tracking
	CreateTaskCalls []*domain.Task
	Commits         int
	Rollbacks       int
}

var _ service.TaskRepository = (*MockTaskRepository)(nil)

// GetApplicationForShare implements service.TaskRepository
func (m *MockTaskRepository) GetApplicationForShare(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if m.GetApplicationForShareFn != nil {
		return m.GetApplicationForShareFn(ctx, id)
	}
	return nil, nil
}

// CreateTask implements service.TaskRepository
func (m *MockTaskRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	m.CreateTaskCalls = append(m.CreateTaskCalls, task)
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, task)
	}
	task.ID = uuid.New()
	return nil
}

// ListOpenDueBetween implements service.TaskRepository
func (m *MockTaskRepository) ListOpenDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Task, error) {
	if m.ListOpenDueBetweenFn != nil {
		return m.ListOpenDueBetweenFn(ctx, from, to)
	}
	return []*domain.Task{}, nil
}

// UpdateTaskStatus implements service.TaskRepository
func (m *MockTaskRepository) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error {
	if m.UpdateTaskStatusFn != nil {
		return m.UpdateTaskStatusFn(ctx, id, status)
	}
	return nil
}

// WithTx implements service.TaskRepository
func (m *MockTaskRepository) WithTx(_ *sql.Tx) service.TaskRepository {
	return m
}

// RunInTx implements service.TaskRepository
func (m *MockTaskRepository) RunInTx(
	ctx context.Context,
	fn func(ctx context.Context, repo service.TaskRepository) error,
) error {
	if m.RunInTxFn != nil {
		return m.RunInTxFn(ctx, fn)
	}
	if err := fn(ctx, m); err != nil {
		m.Rollbacks++
		return err
	}
	m.Commits++
	return nil
}
