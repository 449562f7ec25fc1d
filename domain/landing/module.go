package landing

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/Narturebelle/Narturebelle/internal/config"
)

var Module = fx.Module("landing",
	fx.Provide(
		newMetrics,
		NewStoreFromConfig,
		NewHandlerFromConfig,
	),
	fx.Invoke(registerRoutes),
)

func newMetrics(reg *prometheus.Registry) *Metrics {
	return NewMetrics(reg)
}

// NewStoreFromConfig builds the session store with wall-clock pages.
func NewStoreFromConfig(cfg *config.Config, log *slog.Logger, m *Metrics) *Store {
	newPage := NewPageFactory(PageOptions{
		SubmitDelay: cfg.Landing.SubmitDelay,
		ResetDelay:  cfg.Landing.ResetDelay,
		Log:         log,
		Metrics:     m,
	})
	limit := RateLimit{
		PerMinute: cfg.Landing.ContactRatePerMinute,
		Burst:     cfg.Landing.ContactRateBurst,
	}
	return NewStore(cfg.Session.TTL, limit, newPage)
}

// NewHandlerFromConfig builds the handler from configuration.
func NewHandlerFromConfig(cfg *config.Config, store *Store, m *Metrics, log *slog.Logger) *Handler {
	return NewHandler(store, m,
		Content{
			LogoImageURL:   cfg.Landing.LogoImageURL,
			HeroImageURL:   cfg.Landing.HeroImageURL,
			ContactAddress: cfg.Landing.ContactAddress,
		},
		CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		log,
	)
}

func registerRoutes(r *chi.Mux, h *Handler) {
	RegisterRoutes(r, h)
}

// SweepTask drops idle sessions and refreshes the active session gauge. It
// is run by the scheduler.
type SweepTask struct {
	store   *Store
	metrics *Metrics
	log     *slog.Logger
}

// NewSweepTask creates the session sweep task.
func NewSweepTask(store *Store, m *Metrics, log *slog.Logger) *SweepTask {
	return &SweepTask{store: store, metrics: m, log: log}
}

// Run performs one sweep.
func (t *SweepTask) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dropped := t.store.Sweep(time.Now())
	t.metrics.ActiveSessions.Set(float64(t.store.Len()))
	if dropped > 0 {
		t.log.Info("swept idle sessions",
			slog.Int("dropped", dropped),
			slog.Int("active", t.store.Len()),
		)
	}
	return nil
}
