package health

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Narturebelle/Narturebelle/domain/landing"
	"github.com/Narturebelle/Narturebelle/domain/scheduler"
	"github.com/Narturebelle/Narturebelle/internal/version"
)

// Handler handles health check requests
type Handler struct {
	store     *landing.Store
	scheduler *scheduler.Scheduler
	system    systemProbe
	startAt   time.Time
}

// NewHandler creates a new health handler
func NewHandler(store *landing.Store, s *scheduler.Scheduler) *Handler {
	return &Handler{
		store:     store,
		scheduler: s,
		system:    newSystemProbe(),
		startAt:   time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   version.Info     `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health reports uptime, build info, host resources and the state of the
// session sweeper. It always answers 200; degraded checks are informational.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sweeper := Check{Status: "healthy"}
	if !h.scheduler.IsRunning() {
		sweeper = Check{Status: "degraded", Message: "session sweeper is not running"}
	}
	system := h.system.check(ctx)

	status := "healthy"
	if sweeper.Status == "degraded" || system.Status == "degraded" {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Current(),
		Checks: map[string]Check{
			"sessions": {Status: "healthy", Message: sessionsMessage(h.store.Len())},
			"sweeper":  sweeper,
			"system":   system,
		},
	})
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the app has finished starting.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.scheduler.IsRunning() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"message": "scheduler not started",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func sessionsMessage(n int) string {
	if n == 1 {
		return "1 active session"
	}
	return strconv.Itoa(n) + " active sessions"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
