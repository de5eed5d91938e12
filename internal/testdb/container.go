//go:build integration

package testdb

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	containerImage    = "postgres:16-alpine"
	containerUser     = "test"
	containerPassword = "test"
	containerDB       = "tasks_test"
)

var (
	containerOnce sync.Once
	sharedURL     string
	containerErr  error
)

// containerURL starts (once per test binary) a PostgreSQL container and
// returns its connection URL. The container is reaped by testcontainers when
// the process exits.
func containerURL(t *testing.T) string {
	t.Helper()

	containerOnce.Do(func() {
		sharedURL, containerErr = startContainer(context.Background())
	})
	if containerErr != nil {
		t.Skipf("no DATABASE_URL set and PostgreSQL container unavailable: %v", containerErr)
	}
	return sharedURL
}

func startContainer(ctx context.Context) (string, error) {
	dsn := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			containerUser, containerPassword, host, port.Port(), containerDB)
	}

	req := testcontainers.ContainerRequest{
		Image:        containerImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     containerUser,
			"POSTGRES_PASSWORD": containerPassword,
			"POSTGRES_DB":       containerDB,
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", dsn).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("failed to resolve container port: %w", err)
	}

	return dsn(host, port), nil
}
