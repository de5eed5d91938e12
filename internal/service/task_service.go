package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/clock"
	"github.com/learnlynk/task-api/internal/domain"
	"github.com/learnlynk/task-api/internal/platform/logger"
	"github.com/learnlynk/task-api/internal/redact"
	"github.com/learnlynk/task-api/internal/store"
)

// TaskRepository defines the repository interface for the task service.
// It spans both the applications and tasks tables so that the application
// lookup and the insert can share one transaction.
type TaskRepository interface {
	// GetApplicationForShare retrieves an application and, inside a
	// transaction, holds a shared lock on it.
	GetApplicationForShare(ctx context.Context, id uuid.UUID) (*domain.Application, error)

	// CreateTask saves a new task; the store assigns its ID
	CreateTask(ctx context.Context, task *domain.Task) error

	// ListOpenDueBetween returns non-completed tasks due within [from, to]
	ListOpenDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Task, error)

	// UpdateTaskStatus sets the status of a task
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error

	// WithTx returns a new repository instance that uses the provided transaction
	WithTx(tx *sql.Tx) TaskRepository

	// RunInTx runs fn with a repository bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context, repo TaskRepository) error) error
}

// CreateTaskParams carries the raw creation fields as received from the caller.
type CreateTaskParams struct {
	ApplicationID string
	TaskType      string
	DueAt         string
}

// TaskService provides task-related operations
type TaskService interface {
	// CreateTask validates params, derives the tenant from the referenced
	// application and persists a new open task. Identical calls create
	// distinct tasks.
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// ListDueToday returns open tasks due during the current calendar day in
	// loc, earliest first.
	ListDueToday(ctx context.Context, loc *time.Location) ([]*domain.Task, error)

	// CompleteTask marks a task completed.
	CompleteTask(ctx context.Context, id uuid.UUID) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo   TaskRepository
	clock  clock.Clock
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if repo is nil. A nil clock falls back to the system clock.
func NewTaskService(repo TaskRepository, clk clock.Clock, logger *slog.Logger) (TaskService, error) {
	if repo == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "repo cannot be nil",
		}
	}
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		repo:   repo,
		clock:  clk,
		logger: logger.With("component", "task_service"),
	}, nil
}

// CreateTask runs the creation checks in order and stops at the first failure.
// The application lookup and the insert share one transaction.
func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if params.ApplicationID == "" || params.TaskType == "" || params.DueAt == "" {
		return nil, ErrMissingFields
	}

	taskType, err := domain.ParseTaskType(params.TaskType)
	if err != nil {
		log.Debug("rejected task type", "task_type", params.TaskType)
		return nil, invalidTaskType(err)
	}

	dueAt, err := domain.ParseDueAt(params.DueAt)
	if err != nil {
		return nil, invalidDueAt(err)
	}
	now := s.clock.Now()
	if !dueAt.After(now) {
		return nil, invalidDueAt(domain.ErrDueAtNotInFuture)
	}

	appID, err := uuid.Parse(params.ApplicationID)
	if err != nil {
		log.Info("application lookup rejected",
			"reason", "malformed_id",
			"application_id", params.ApplicationID)
		return nil, ErrInvalidApplication
	}

	var (
		created  *domain.Task
		lookedUp bool
	)
	err = s.repo.RunInTx(ctx, func(ctx context.Context, repo TaskRepository) error {
		lookedUp = true
		app, err := repo.GetApplicationForShare(ctx, appID)
		if err != nil {
			if store.IsNotFoundError(err) {
				log.Info("application lookup rejected",
					"reason", "not_found",
					"application_id", appID)
			} else {
				log.Error("application lookup rejected",
					"reason", "lookup_failed",
					"application_id", appID,
					"error", redact.Error(err))
			}
			return ErrInvalidApplication
		}

		task, err := domain.NewTask(app, taskType, dueAt, now)
		if err != nil {
			// Inputs were checked above; only a malformed stored application lands here.
			log.Error("failed to build task from application",
				"application_id", appID,
				"error", redact.Error(err))
			return NewTaskServiceError("create_task", "failed to build task", err)
		}

		if err := repo.CreateTask(ctx, task); err != nil {
			log.Error("failed to create task in transaction",
				"application_id", appID,
				"tenant_id", app.TenantID,
				"error", redact.Error(err))
			return NewTaskServiceError("create_task", "failed to save task", err)
		}

		created = task
		return nil
	})
	if err != nil {
		// The application could not be read at all when the transaction never opened.
		if !lookedUp {
			log.Error("application lookup rejected",
				"reason", "lookup_failed",
				"application_id", appID,
				"error", redact.Error(err))
			return nil, ErrInvalidApplication
		}
		var serviceErr *TaskServiceError
		if errors.As(err, &serviceErr) {
			return nil, err
		}
		return nil, NewTaskServiceError("create_task", "transaction failed", err)
	}

	log.Info("task created",
		"task_id", created.ID,
		"application_id", created.ApplicationID,
		"tenant_id", created.TenantID,
		"type", created.Type)

	return created, nil
}

// ListDueToday implements TaskService.ListDueToday
func (s *taskServiceImpl) ListDueToday(ctx context.Context, loc *time.Location) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	start, end := domain.DayWindow(s.clock.Now(), loc)
	tasks, err := s.repo.ListOpenDueBetween(ctx, start, end)
	if err != nil {
		log.Error("failed to list tasks due today",
			"from", start,
			"to", end,
			"error", redact.Error(err))
		return nil, NewTaskServiceError("list_due_today", "failed to list tasks", err)
	}

	log.Debug("listed tasks due today",
		"from", start,
		"to", end,
		"count", len(tasks))
	return tasks, nil
}

// CompleteTask implements TaskService.CompleteTask
func (s *taskServiceImpl) CompleteTask(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.repo.UpdateTaskStatus(ctx, id, domain.TaskStatusCompleted); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task to complete not found", "task_id", id)
		} else {
			log.Error("failed to complete task",
				"task_id", id,
				"error", redact.Error(err))
		}
		return NewTaskServiceError("complete_task", "failed to update task status", err)
	}

	log.Info("task completed", "task_id", id)
	return nil
}
