package landing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Narturebelle/Narturebelle/domain/contact"
)

// Submission outcomes recorded by landing_contact_submissions_total.
const (
	OutcomeStarted     = "started"
	OutcomeSucceeded   = "succeeded"
	OutcomeFailed      = "failed"
	OutcomeRejected    = "rejected"
	OutcomeRateLimited = "rate_limited"
)

// Metrics are the landing page's Prometheus collectors.
type Metrics struct {
	Navigation     *prometheus.CounterVec
	Submissions    *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
}

// NewMetrics registers the landing collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Navigation: f.NewCounterVec(prometheus.CounterOpts{
			Name: "landing_navigation_total",
			Help: "Navigation clicks by target",
		}, []string{"target"}),

		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "landing_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),

		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "landing_active_sessions",
			Help: "Visitor sessions currently held in memory",
		}),
	}
}

// ObserveTransition counts resolved submissions. Register it with
// contact.Machine.OnTransition.
func (m *Metrics) ObserveTransition(_, to contact.Status) {
	switch to {
	case contact.Success:
		m.Submissions.WithLabelValues(OutcomeSucceeded).Inc()
	case contact.Error:
		m.Submissions.WithLabelValues(OutcomeFailed).Inc()
	}
}
