package api

import (
	"encoding/json"
	"time"

	"github.com/learnlynk/task-api/internal/domain"
)

// CreateTaskRequest defines the payload for POST /create-task.
type CreateTaskRequest struct {
	ApplicationID string `json:"application_id" validate:"required"`
	TaskType      string `json:"task_type"      validate:"required"`
	DueAt         string `json:"due_at"         validate:"required"`

	// TenantID only detects whether the caller sent the key; its value is
	// never read. The tenant always comes from the application.
	TenantID json.RawMessage `json:"tenant_id,omitempty"`
}

// CreateTaskResponse defines the successful response for task creation.
type CreateTaskResponse struct {
	Success bool   `json:"success"`
	TaskID  string `json:"task_id"`
}

// TaskResponse is the dashboard view of a task.
type TaskResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	TenantID      string    `json:"tenant_id"`
	Type          string    `json:"type"`
	DueAt         time.Time `json:"due_at"`
	Status        string    `json:"status"`
}

// TaskListResponse defines the response for GET /tasks/today.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// CompleteTaskResponse defines the response for POST /tasks/{id}/complete.
// Tasks is the refreshed list for the same day window.
type CompleteTaskResponse struct {
	Success bool           `json:"success"`
	Tasks   []TaskResponse `json:"tasks"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:            task.ID.String(),
		ApplicationID: task.ApplicationID.String(),
		TenantID:      task.TenantID.String(),
		Type:          string(task.Type),
		DueAt:         task.DueAt.UTC(),
		Status:        string(task.Status),
	}
}

// tasksToResponse never returns nil so the list always encodes as [].
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
