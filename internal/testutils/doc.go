// Package testutils provides shared helpers for tests: an in-memory slog
// handler for asserting on log output and fixtures that seed the database.
package testutils
