package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/learnlynk/task-api/internal/api/shared"
	"github.com/learnlynk/task-api/internal/platform/logger"
	"github.com/learnlynk/task-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	log, handler := testutils.NewTestLogger()

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	Trace(log)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks/today", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, traceID, 32)

	entries := handler.Entries()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, traceID, entry["trace_id"], "every request log line carries the trace id")
	}
	assert.Equal(t, "request started", entries[0]["message"])
	assert.Equal(t, "inside handler", entries[1]["message"])
}

func TestTrace_DistinctPerRequest(t *testing.T) {
	seen := map[string]bool{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[shared.GetTraceID(r.Context())] = true
	})
	h := Trace(nil)(next)

	for i := 0; i < 5; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Len(t, seen, 5)
}
