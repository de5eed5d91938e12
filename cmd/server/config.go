package main

import (
	"fmt"
	"log/slog"

	"github.com/learnlynk/task-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Database configuration",
		"url_present", cfg.Database.URL != "",
		"service_role_key_present", cfg.Database.ServiceRoleKey != "",
		"auto_migrate", cfg.Database.AutoMigrate)

	return cfg, nil
}
