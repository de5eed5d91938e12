package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/domain"
	"github.com/learnlynk/task-api/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Custom behavior functions
	CreateTaskFn   func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error)
	ListDueTodayFn func(ctx context.Context, loc *time.Location) ([]*domain.Task, error)
	CompleteTaskFn func(ctx context.Context, id uuid.UUID) error

	// Default return values
	Task         *domain.Task
	Tasks        []*domain.Task
	DefaultError error
}

var _ service.TaskService = (*MockTaskService)(nil)

// CreateTask implements the TaskService.CreateTask method
func (m *MockTaskService) CreateTask(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, params)
	}
	return m.Task, m.DefaultError
}

// ListDueToday implements the TaskService.ListDueToday method
func (m *MockTaskService) ListDueToday(ctx context.Context, loc *time.Location) ([]*domain.Task, error) {
	if m.ListDueTodayFn != nil {
		return m.ListDueTodayFn(ctx, loc)
	}
	return m.Tasks, m.DefaultError
}

// CompleteTask implements the TaskService.CompleteTask method
func (m *MockTaskService) CompleteTask(ctx context.Context, id uuid.UUID) error {
	if m.CompleteTaskFn != nil {
		return m.CompleteTaskFn(ctx, id)
	}
	return m.DefaultError
}
