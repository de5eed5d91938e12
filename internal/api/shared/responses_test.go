package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/learnlynk/task-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLogger returns a request whose context carries a text logger writing to buf.
func requestWithLogger(buf *strings.Builder, traceID string) *http.Request {
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := logger.WithLogger(context.Background(), log)
	if traceID != "" {
		ctx = context.WithValue(ctx, TraceIDKey, traceID)
	}
	return httptest.NewRequest(http.MethodPost, "/create-task", nil).WithContext(ctx)
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "object",
			status:       http.StatusOK,
			data:         map[string]interface{}{"success": true, "task_id": "abc"},
			expectedBody: `{"success":true,"task_id":"abc"}`,
		},
		{
			name:         "empty object",
			status:       http.StatusOK,
			data:         map[string]interface{}{},
			expectedBody: `{}`,
		},
		{
			name:         "nil",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	var logBuf strings.Builder
	req := requestWithLogger(&logBuf, "")
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	t.Run("with trace id", func(t *testing.T) {
		var logBuf strings.Builder
		req := requestWithLogger(&logBuf, "test-trace-id")
		w := httptest.NewRecorder()

		RespondWithError(w, req, http.StatusBadRequest, "Invalid task_type")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Invalid task_type", response.Error)
		assert.Equal(t, "test-trace-id", response.TraceID)
	})

	t.Run("without trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		RespondWithError(w, req, http.StatusMethodNotAllowed, "Method not allowed")

		assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		message          string
		err              error
		elevate          bool
		expectedLogLevel string
	}{
		{
			name:             "server error",
			statusCode:       http.StatusInternalServerError,
			message:          "Database Error",
			err:              errors.New("insert failed"),
			expectedLogLevel: "level=ERROR",
		},
		{
			name:             "client error",
			statusCode:       http.StatusBadRequest,
			message:          "Invalid application_id",
			err:              errors.New("application not found"),
			expectedLogLevel: "level=DEBUG",
		},
		{
			name:             "client error elevated",
			statusCode:       http.StatusBadRequest,
			message:          "tenant_id cannot be set by the caller",
			err:              errors.New("tenant override"),
			elevate:          true,
			expectedLogLevel: "level=WARN",
		},
		{
			name:             "rate limited",
			statusCode:       http.StatusTooManyRequests,
			message:          "Too many requests",
			err:              errors.New("rate limit"),
			expectedLogLevel: "level=WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logBuf strings.Builder
			req := requestWithLogger(&logBuf, "test-trace-id")
			w := httptest.NewRecorder()

			var opts []ResponseOption
			if tc.elevate {
				opts = append(opts, WithElevatedLogLevel())
			}
			RespondWithErrorAndLog(w, req, tc.statusCode, tc.message, tc.err, opts...)

			assert.Equal(t, tc.statusCode, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.message, response.Error)
			assert.Equal(t, "test-trace-id", response.TraceID)

			logOutput := logBuf.String()
			assert.Contains(t, logOutput, tc.expectedLogLevel)
			assert.Contains(t, logOutput, "trace_id=test-trace-id")
			assert.Contains(t, logOutput, "error_type=")
		})
	}
}

func TestRespondWithErrorAndLog_NeverLeaksError(t *testing.T) {
	var logBuf strings.Builder
	req := requestWithLogger(&logBuf, "")
	w := httptest.NewRecorder()

	storeErr := errors.New(`ERROR: new row for relation "tasks" violates check constraint "tasks_type_check" (SQLSTATE 23514)`)
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "Database Error", storeErr)

	assert.JSONEq(t, `{"error":"Database Error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "tasks_type_check")
	assert.NotContains(t, w.Body.String(), "SQLSTATE")
}

func TestWithElevatedLogLevel(t *testing.T) {
	opts := responseOptions{}
	WithElevatedLogLevel()(&opts)
	assert.True(t, opts.elevateLogLevel)
}
