// Package service contains the application use cases for follow-up tasks.
// It orchestrates domain objects and repositories (defined in internal/store)
// to create tasks against an application, list the tasks due in a caller's
// calendar day, and mark tasks completed.
//
// Key components:
//
// 1. TaskService:
//   - CreateTask runs the fail-fast validation pipeline (presence, task type,
//     future due_at, application reference) before anything is written
//   - The application lookup and the insert share one transaction so the
//     tenant_id copied onto the task cannot go stale
//
// 2. TaskRepository:
//   - Narrow persistence interface the service depends on
//   - NewTaskRepositoryAdapter backs it with the store interfaces and a *sql.DB
//
// 3. Error Handling:
//   - Validation failures are returned as sentinel errors (ErrMissingFields,
//     ErrInvalidTaskType, ...) for the API layer to map to client messages
//   - Unexpected store failures are wrapped in TaskServiceError, whose
//     details are logged but never sent to clients
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
