package middleware

import (
	"log/slog"
	"net/http"

	"github.com/learnlynk/task-api/internal/api/shared"
	"github.com/learnlynk/task-api/internal/platform/logger"
)

// Trace adds a trace ID and a request-scoped logger to the request context.
// Apply it before any handler that logs or writes error responses so both
// carry the same trace_id.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
