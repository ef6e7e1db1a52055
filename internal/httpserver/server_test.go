package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kinogate/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouter_Liveness(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "root", path: "/"},
		{name: "healthz", path: "/healthz"},
	}

	router := NewRouter(prometheus.NewRegistry())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	m.IncMediaAdded()

	router := NewRouter(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kinogate_media_added_total 1")
}

func TestRouter_UnknownPath(t *testing.T) {
	router := NewRouter(prometheus.NewRegistry())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ShutdownStopsStart(t *testing.T) {
	srv := New("127.0.0.1:0", prometheus.NewRegistry(), zap.NewNop())

	done := make(chan error, 1)
	go func() {
		done <- srv.Start()
	}()

	// Give ListenAndServe a moment to bind before shutting down
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
