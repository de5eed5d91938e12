package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMigrationCommand(t *testing.T) {
	for _, cmd := range []string{"up", "down", "status", "version"} {
		assert.NoError(t, validateMigrationCommand(cmd), cmd)
	}

	for _, cmd := range []string{"", "create", "reset", "UP"} {
		assert.Error(t, validateMigrationCommand(cmd), cmd)
	}
}

func TestRunMigrations_RejectsBeforeTouchingDB(t *testing.T) {
	app := newTestApplication(nil)

	// A nil *sql.DB would panic inside goose; rejection must happen first.
	err := runMigrations(context.Background(), nil, app.logger, "reset")
	assert.ErrorContains(t, err, "unsupported migration command")
}
