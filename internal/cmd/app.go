package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Narturebelle/Narturebelle/domain/health"
	"github.com/Narturebelle/Narturebelle/domain/landing"
	"github.com/Narturebelle/Narturebelle/domain/scheduler"
	"github.com/Narturebelle/Narturebelle/domain/tracing"
	"github.com/Narturebelle/Narturebelle/internal/config"
	"github.com/Narturebelle/Narturebelle/internal/server"
	"github.com/Narturebelle/Narturebelle/pkg/logger"
)

// loadEnv loads .env files if present. Variables already set in the
// environment win over .env; .env.local and --env-file override both.
func loadEnv(extra []string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
	if len(extra) > 0 {
		return godotenv.Overload(extra...)
	}
	return nil
}

// appOptions assembles the landing site's fx modules.
func appOptions(extra ...fx.Option) fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		tracing.Module,
		server.Module,

		// Domain modules
		health.Module,
		landing.Module,
		scheduler.Module,

		fx.Options(extra...),
	)
}
