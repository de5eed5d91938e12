package domain

import "github.com/google/uuid"

// Application is the external entity a task is attached to. It is read-only
// to this service and is the sole source of a task's tenant.
type Application struct {
	ID       uuid.UUID `json:"id"`
	TenantID uuid.UUID `json:"tenant_id"`
}

// Validate checks that the application identifies both itself and its tenant.
func (a *Application) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyApplicationID
	}
	if a.TenantID == uuid.Nil {
		return ErrEmptyTenantID
	}
	return nil
}
