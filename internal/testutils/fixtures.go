package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/domain"
	"github.com/learnlynk/task-api/internal/store"
	"github.com/stretchr/testify/require"
)

// MustInsertApplication inserts an application owned by tenantID and returns its ID.
func MustInsertApplication(ctx context.Context, t *testing.T, db store.DBTX, tenantID uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRowContext(ctx,
		`INSERT INTO applications (tenant_id) VALUES ($1) RETURNING id`,
		tenantID,
	).Scan(&id)
	require.NoError(t, err, "failed to insert test application")
	return id
}

// MustInsertTask inserts a task directly, bypassing creation-time validation,
// so tests can seed past-due and completed rows.
func MustInsertTask(
	ctx context.Context,
	t *testing.T,
	db store.DBTX,
	app domain.Application,
	taskType domain.TaskType,
	dueAt time.Time,
	status domain.TaskStatus,
) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRowContext(ctx,
		`INSERT INTO tasks (application_id, tenant_id, type, due_at, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		app.ID, app.TenantID, string(taskType), dueAt, string(status),
	).Scan(&id)
	require.NoError(t, err, "failed to insert test task")
	return id
}

// CountTasks returns the number of rows in tasks visible to db.
func CountTasks(ctx context.Context, t *testing.T, db store.DBTX) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM tasks`).Scan(&n))
	return n
}
