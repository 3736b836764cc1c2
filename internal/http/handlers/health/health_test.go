package health

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	rr := httptest.NewRecorder()
	Ping(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "SakaClient backend is working ✅", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestHealth(t *testing.T) {
	h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), "0758170835")
	h.now = func() time.Time {
		return time.Date(2026, time.October, 14, 12, 30, 15, 123_000_000, time.FixedZone("EAT", 3*3600))
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"ok":true,"name":"SakaClient Backend","time":"2026-10-14T09:30:15.123Z","customerCare":"0758170835"}`,
		rr.Body.String(),
	)
}

func TestHealth_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	h := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), "0758170835")

	rr := httptest.NewRecorder()
	middleware.RequestID(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, buf.String(), "op=handlers.health")
	assert.Contains(t, buf.String(), "request_id=")
}
