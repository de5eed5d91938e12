package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/learnlynk/task-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPServer_Timeouts(t *testing.T) {
	app := newTestApplication(&mocks.MockTaskService{})
	app.config.Server.Port = 9123
	app.config.Server.ReadTimeoutSeconds = 3
	app.config.Server.WriteTimeoutSeconds = 7

	server := app.newHTTPServer(http.NotFoundHandler())

	assert.Equal(t, ":9123", server.Addr)
	assert.Equal(t, 3*time.Second, server.ReadTimeout)
	assert.Equal(t, 7*time.Second, server.WriteTimeout)
}

func TestServe_GracefulShutdownOnContextCancel(t *testing.T) {
	app := newTestApplication(&mocks.MockTaskService{})
	server := app.newHTTPServer(app.setupRouter())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.serve(ctx, server, listener)
	}()

	url := fmt.Sprintf("http://%s/health", listener.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "OK"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}
