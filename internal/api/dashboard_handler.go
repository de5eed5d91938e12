package api

import (
	"log/slog"
	"net/http"

	"github.com/learnlynk/task-api/internal/api/shared"
	"github.com/learnlynk/task-api/internal/platform/logger"
	"github.com/learnlynk/task-api/internal/service"
)

// DashboardHandler serves the "due today" view and task completion.
type DashboardHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(taskService service.TaskService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		taskService: taskService,
		logger:      logger.With("component", "dashboard_handler"),
	}
}

// ListToday handles GET /tasks/today?tz=<zone>
func (h *DashboardHandler) ListToday(w http.ResponseWriter, r *http.Request) {
	loc, err := getLocation(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	tasks, err := h.taskService.ListDueToday(r.Context(), loc)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("listed tasks due today",
		"tz", loc.String(),
		"count", len(tasks))

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{Tasks: tasksToResponse(tasks)})
}

// CompleteTask handles POST /tasks/{id}/complete. On success it responds
// with the refreshed list for the day window selected by tz.
func (h *DashboardHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	// Resolve tz first so a bad zone cannot leave a completed task behind a 400.
	loc, err := getLocation(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.taskService.CompleteTask(r.Context(), taskID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("task marked completed", "task_id", taskID)

	tasks, err := h.taskService.ListDueToday(r.Context(), loc)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompleteTaskResponse{
		Success: true,
		Tasks:   tasksToResponse(tasks),
	})
}
