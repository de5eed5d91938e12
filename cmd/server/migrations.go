package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/learnlynk/task-api/internal/platform/postgres"
)

// supportedMigrationCommands are the goose commands exposed through -migrate.
var supportedMigrationCommands = map[string]bool{
	"up":      true,
	"down":    true,
	"status":  true,
	"version": true,
}

// validateMigrationCommand rejects commands before a database connection is opened.
func validateMigrationCommand(command string) error {
	if !supportedMigrationCommands[command] {
		return fmt.Errorf("unsupported migration command %q (use up, down, status or version)", command)
	}
	return nil
}

// runMigrations executes a migration command against db.
func runMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger, command string) error {
	if err := validateMigrationCommand(command); err != nil {
		return err
	}

	logger.Info("Executing migrations", "command", command)
	if err := postgres.Migrate(ctx, db, logger, command); err != nil {
		return err
	}
	logger.Info("Migrations finished", "command", command)
	return nil
}
