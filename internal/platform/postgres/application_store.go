package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/domain"
	"github.com/learnlynk/task-api/internal/platform/logger"
	"github.com/learnlynk/task-api/internal/redact"
	"github.com/learnlynk/task-api/internal/store"
)

// PostgresApplicationStore implements the store.ApplicationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresApplicationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresApplicationStore creates a new PostgreSQL implementation of the ApplicationStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresApplicationStore(db store.DBTX, logger *slog.Logger) *PostgresApplicationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresApplicationStore{
		db:     db,
		logger: logger.With(slog.String("component", "application_store")),
	}
}

// Ensure PostgresApplicationStore implements store.ApplicationStore interface
var _ store.ApplicationStore = (*PostgresApplicationStore)(nil)

const selectApplicationQuery = `
	SELECT id, tenant_id
	FROM applications
	WHERE id = $1
`

// GetByID implements store.ApplicationStore.GetByID
func (s *PostgresApplicationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return s.get(ctx, id, selectApplicationQuery)
}

// GetByIDForShare implements store.ApplicationStore.GetByIDForShare
func (s *PostgresApplicationStore) GetByIDForShare(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return s.get(ctx, id, selectApplicationQuery+" FOR SHARE")
}

func (s *PostgresApplicationStore) get(ctx context.Context, id uuid.UUID, query string) (*domain.Application, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var app domain.Application
	err := s.db.QueryRowContext(ctx, query, id).Scan(&app.ID, &app.TenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("application not found", slog.String("application_id", id.String()))
			return nil, store.ErrApplicationNotFound
		}
		log.Error("failed to get application by ID",
			slog.String("error", redact.Error(err)),
			slog.String("application_id", id.String()))
		return nil, store.NewStoreError("application", "get", "query failed", MapError(err))
	}

	return &app, nil
}

// WithTx implements store.ApplicationStore.WithTx
func (s *PostgresApplicationStore) WithTx(tx *sql.Tx) store.ApplicationStore {
	return &PostgresApplicationStore{
		db:     tx,
		logger: s.logger,
	}
}
