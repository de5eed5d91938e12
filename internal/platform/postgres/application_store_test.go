//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/platform/postgres"
	"github.com/learnlynk/task-api/internal/store"
	"github.com/learnlynk/task-api/internal/testdb"
	"github.com/learnlynk/task-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresApplicationStore_GetByID(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		appStore := postgres.NewPostgresApplicationStore(tx, nil)
		tenantID := uuid.New()
		appID := testutils.MustInsertApplication(ctx, t, tx, tenantID)

		app, err := appStore.GetByID(ctx, appID)
		require.NoError(t, err)
		assert.Equal(t, appID, app.ID)
		assert.Equal(t, tenantID, app.TenantID)

		locked, err := appStore.GetByIDForShare(ctx, appID)
		require.NoError(t, err)
		assert.Equal(t, tenantID, locked.TenantID)

		_, err = appStore.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrApplicationNotFound)

		_, err = appStore.GetByIDForShare(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrApplicationNotFound)
	})
}

func TestPostgresApplicationStore_WithTx(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)
	base := postgres.NewPostgresApplicationStore(db, nil)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		tenantID := uuid.New()
		appID := testutils.MustInsertApplication(ctx, t, tx, tenantID)

		// Uncommitted row is visible only through the transactional store.
		_, err := base.GetByID(ctx, appID)
		assert.ErrorIs(t, err, store.ErrApplicationNotFound)

		app, err := base.WithTx(tx).GetByID(ctx, appID)
		require.NoError(t, err)
		assert.Equal(t, tenantID, app.TenantID)
	})
}
