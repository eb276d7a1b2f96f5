package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/m04kA/yetal-bot/internal/api/middleware"
	"github.com/m04kA/yetal-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookPath = "/123456:TEST-token"

type recordedRequest struct {
	route  string
	method string
	status int
}

type fakeMetrics struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeMetrics) RecordHTTPRequest(route, method string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{route: route, method: method, status: status})
}

func text(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func newTestRouter(t *testing.T, metrics middleware.Metrics, logBuf *bytes.Buffer) http.Handler {
	t.Helper()
	return NewRouter(
		Paths{Webhook: webhookPath, Metrics: "/metrics"},
		Handlers{
			Status:  text("status"),
			Health:  text("health"),
			Webhook: text("ok"),
			Metrics: text("metrics"),
		},
		logger.NewWithWriter(logBuf, "info"),
		metrics,
	)
}

func TestRouter_Routes(t *testing.T) {
	var logs bytes.Buffer
	h := newTestRouter(t, nil, &logs)

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{method: http.MethodGet, path: "/", status: http.StatusOK, body: "status"},
		{method: http.MethodGet, path: "/health", status: http.StatusOK, body: "health"},
		{method: http.MethodPost, path: webhookPath, status: http.StatusOK, body: "ok"},
		{method: http.MethodGet, path: "/metrics", status: http.StatusOK, body: "metrics"},
		{method: http.MethodGet, path: webhookPath, status: http.StatusMethodNotAllowed},
		{method: http.MethodPost, path: "/other-token", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRouter_MetricsUseRouteNames(t *testing.T) {
	var logs bytes.Buffer
	metrics := &fakeMetrics{}
	h := newTestRouter(t, metrics, &logs)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, webhookPath, nil))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, metrics.requests, 2)
	assert.Equal(t, recordedRequest{route: RouteWebhook, method: http.MethodPost, status: http.StatusOK}, metrics.requests[0])
	assert.Equal(t, recordedRequest{route: RouteHealth, method: http.MethodGet, status: http.StatusOK}, metrics.requests[1])

	assert.Contains(t, logs.String(), "POST webhook -> 200")
	assert.NotContains(t, logs.String(), "TEST-token")
}

func TestRouter_RequestIDHeader(t *testing.T) {
	var logs bytes.Buffer
	h := newTestRouter(t, nil, &logs)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Len(t, rec.Header().Get(middleware.HeaderRequestID), 36)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	var logs bytes.Buffer
	h := NewRouter(
		Paths{Webhook: webhookPath, Metrics: "/metrics"},
		Handlers{Status: text("status"), Health: text("health"), Webhook: text("ok")},
		logger.NewWithWriter(&logs, "info"),
		nil,
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
