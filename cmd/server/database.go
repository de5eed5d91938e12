package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/learnlynk/task-api/internal/config"
	"github.com/learnlynk/task-api/internal/platform/postgres"
)

// setupAppDatabase establishes the process-wide connection pool.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := postgres.OpenDB(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}
	return db, nil
}
