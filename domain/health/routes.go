package health

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterRoutes registers health check routes
func RegisterRoutes(r *chi.Mux, h *Handler, reg *prometheus.Registry) {
	r.Get("/health", h.Health)
	r.Get("/healthz", h.Healthz)
	r.Get("/ready", h.Ready)
	r.Method("GET", "/metrics", MetricsHandler(reg))
}
