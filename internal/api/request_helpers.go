package api

import (
	"fmt"
	"net/http"
	"time"
	_ "time/tzdata" // IANA zones for tz must resolve on hosts without zoneinfo

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/learnlynk/task-api/internal/domain"
)

// getPathUUID extracts a UUID from the URL path parameters.
// Missing and malformed values are both reported as domain.ErrInvalidID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// getLocation resolves the tz query parameter to a location. An absent value
// means UTC. "Local" is rejected because it would depend on the server host.
func getLocation(r *http.Request) (*time.Location, error) {
	name := r.URL.Query().Get("tz")
	if name == "" {
		return time.UTC, nil
	}
	if name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimezone, err)
	}
	return loc, nil
}
