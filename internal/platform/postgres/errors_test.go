package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/learnlynk/task-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "no rows", err: sql.ErrNoRows, expected: store.ErrNotFound},
		{name: "unique", err: &pgconn.PgError{Code: uniqueViolationCode}, expected: store.ErrDuplicate},
		{
			name:     "foreign key",
			err:      &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "tasks_application_tenant_fk"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "check",
			err:      &pgconn.PgError{Code: checkViolationCode, ConstraintName: "tasks_type_check"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "not null",
			err:      &pgconn.PgError{Code: notNullViolationCode, ColumnName: "tenant_id"},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "bad text representation",
			err:      &pgconn.PgError{Code: invalidTextRepresentationCode},
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "wrapped pg error",
			err:      fmt.Errorf("exec: %w", &pgconn.PgError{Code: uniqueViolationCode}),
			expected: store.ErrDuplicate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.err)
			assert.ErrorIs(t, mapped, tc.expected)
			assert.ErrorIs(t, mapped, tc.err, "original error must stay reachable for logging")
		})
	}

	assert.NoError(t, MapError(nil))

	other := errors.New("connection reset by peer")
	assert.Same(t, other, MapError(other))
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: foreignKeyViolationCode})
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsCheckConstraintViolation(fk))
	assert.False(t, IsNotNullViolation(fk))

	assert.True(t, IsCheckConstraintViolation(&pgconn.PgError{Code: checkViolationCode}))
	assert.True(t, IsNotNullViolation(&pgconn.PgError{Code: notNullViolationCode}))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}

func TestViolationKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"foreign key", fmt.Errorf("insert: %w", &pgconn.PgError{Code: foreignKeyViolationCode}), "foreign_key"},
		{"check", &pgconn.PgError{Code: checkViolationCode}, "check"},
		{"not null", &pgconn.PgError{Code: notNullViolationCode}, "not_null"},
		{"unique is not an insert violation here", &pgconn.PgError{Code: uniqueViolationCode}, ""},
		{"plain error", errors.New("connection reset"), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, violationKind(tc.err))
		})
	}
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrTaskNotFound))
	assert.ErrorIs(t, CheckRowsAffected(fakeResult{rows: 0}, store.ErrTaskNotFound), store.ErrTaskNotFound)
	assert.ErrorIs(t, CheckRowsAffected(fakeResult{rows: 0}, nil), store.ErrNotFound)

	boom := errors.New("driver does not support RowsAffected")
	assert.ErrorIs(t, CheckRowsAffected(fakeResult{err: boom}, nil), boom)
	assert.Error(t, CheckRowsAffected(nil, nil))
}
