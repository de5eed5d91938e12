package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/learnlynk/task-api/internal/api/shared"
	"github.com/learnlynk/task-api/internal/platform/logger"
	"github.com/learnlynk/task-api/internal/service"
)

// TaskHandler handles task creation requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With("component", "task_handler"),
	}
}

// CreateTask handles POST /create-task requests.
//
// Checks run in a fixed order and the first failure decides the response:
// method, body shape, tenant override, field presence, then the service's
// type, due date and application checks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		MethodNotAllowed(w, r)
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	if len(req.TenantID) > 0 {
		HandleAPIError(w, r, service.ErrTenantOverride, shared.WithElevatedLogLevel())
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %w", service.ErrMissingFields, err))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), service.CreateTaskParams{
		ApplicationID: req.ApplicationID,
		TaskType:      req.TaskType,
		DueAt:         req.DueAt,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("create-task succeeded", "task_id", task.ID)

	shared.RespondWithJSON(w, r, http.StatusOK, CreateTaskResponse{
		Success: true,
		TaskID:  task.ID.String(),
	})
}
