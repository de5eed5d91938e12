package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/learnlynk/task-api/internal/clock"
	"github.com/learnlynk/task-api/internal/config"
	"github.com/learnlynk/task-api/internal/platform/postgres"
	"github.com/learnlynk/task-api/internal/service"
	"github.com/learnlynk/task-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB
	clock  clock.Clock

	applicationStore store.ApplicationStore
	taskStore        store.TaskStore

	taskService service.TaskService
}

// newApplication wires stores and services around an established database handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		clock:  clock.System{},
	}

	app.applicationStore = postgres.NewPostgresApplicationStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	repo := service.NewTaskRepositoryAdapter(app.applicationStore, app.taskStore, db)

	var err error
	app.taskService, err = service.NewTaskService(repo, app.clock, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
