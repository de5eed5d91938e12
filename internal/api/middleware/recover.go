package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/learnlynk/task-api/internal/api/shared"
	"github.com/learnlynk/task-api/internal/platform/logger"
)

// InternalErrorMessage is the only text a client sees when a handler panics.
const InternalErrorMessage = "Internal server error"

// Recoverer converts a panic in the handler chain into a 500 JSON error
// response. http.ErrAbortHandler is re-raised so net/http can abort the
// connection as intended.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("recovered from panic",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", r.URL.Path),
				slog.String("method", r.Method),
				slog.String("trace_id", shared.GetTraceID(r.Context())))

			shared.RespondWithError(w, r, http.StatusInternalServerError, InternalErrorMessage)
		}()

		next.ServeHTTP(w, r)
	})
}
