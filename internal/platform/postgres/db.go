package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/learnlynk/task-api/internal/config"
	"github.com/learnlynk/task-api/internal/redact"
)

// Pool defaults that are not exposed through configuration.
const (
	connMaxLifetime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// ConnConfig parses cfg.URL and installs the service-role key as the
// connection password, replacing any password embedded in the URL.
func ConnConfig(cfg config.DatabaseConfig) (*pgx.ConnConfig, error) {
	connCfg, err := pgx.ParseConfig(cfg.URL)
	if err != nil {
		// pgx echoes the connection string in parse errors.
		return nil, fmt.Errorf("failed to parse database url: %s", redact.Error(err))
	}
	connCfg.Password = cfg.ServiceRoleKey
	return connCfg, nil
}

// OpenDB opens the process-wide connection pool and verifies it with a ping.
func OpenDB(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	connCfg, err := ConnConfig(cfg)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDB(*connCfg)

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(max(1, cfg.MaxOpenConns/2))
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	logger.Info("Database connection established",
		"host", connCfg.Host,
		"database", connCfg.Database,
		"max_open_conns", cfg.MaxOpenConns)
	return db, nil
}
