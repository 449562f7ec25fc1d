package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Narturebelle/Narturebelle/internal/config"
)

func newTestRouter(t *testing.T) (*bytes.Buffer, *chi.Mux) {
	t.Helper()
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	r, err := NewRouter(log)
	require.NoError(t, err)

	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	return &buf, r
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouter_Static(t *testing.T) {
	_, r := newTestRouter(t)

	rec := serve(r, http.MethodGet, "/static/styles.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "--nb-sage")
}

func TestRouter_NotFoundIsJSON(t *testing.T) {
	_, r := newTestRouter(t)

	rec := serve(r, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"not_found","message":"Resource not found"}}`, rec.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	_, r := newTestRouter(t)

	rec := serve(r, http.MethodPost, "/health")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "method_not_allowed")
}

func TestRouter_RecoversPanics(t *testing.T) {
	buf, r := newTestRouter(t)

	rec := serve(r, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestRequestLogger_SkipsProbes(t *testing.T) {
	buf, r := newTestRouter(t)

	serve(r, http.MethodGet, "/health")
	assert.NotContains(t, buf.String(), `"uri":"/health"`)

	serve(r, http.MethodGet, "/static/styles.css")
	assert.Contains(t, buf.String(), `"uri":"/static/styles.css"`)
	assert.Contains(t, buf.String(), `"request_id"`)
}

func TestHandler_TracingOnlyWhenEnabled(t *testing.T) {
	_, r := newTestRouter(t)

	disabled, ok := Handler(r, &config.Config{}).(*chi.Mux)
	require.True(t, ok)
	assert.Same(t, r, disabled)

	enabled := Handler(r, &config.Config{Otel: config.OtelConfig{ExporterEndpoint: "http://localhost:4318", ServiceName: "test"}})
	_, isMux := enabled.(*chi.Mux)
	assert.False(t, isMux)
	assert.Equal(t, http.StatusOK, serve(enabled, http.MethodGet, "/health").Code)
}
