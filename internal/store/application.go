package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/domain"
)

// ApplicationStore provides read access to applications.
// Applications are owned by another system; this service never writes them.
type ApplicationStore interface {
	// GetByID retrieves an application by its ID.
	// Returns ErrApplicationNotFound if the application does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)

	// GetByIDForShare retrieves an application and holds a shared row lock on
	// it until the surrounding transaction ends, so its tenant cannot change
	// underneath a dependent insert. Outside a transaction it behaves like GetByID.
	// Returns ErrApplicationNotFound if the application does not exist.
	GetByIDForShare(ctx context.Context, id uuid.UUID) (*domain.Application, error)

	// WithTx returns a new ApplicationStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ApplicationStore
}
