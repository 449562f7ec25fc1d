// Package logger builds the process-wide slog.Logger and provides the
// attribute helpers used across the landing site.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger creates a logger configured from LOG_LEVEL and GO_ENV.
// GO_ENV=production switches to JSON output; anything else logs text.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}

	var handler slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Scope tags log lines with the component that emitted them.
func Scope(name string) slog.Attr {
	return slog.String("scope", name)
}

// Error wraps err as the "error" attribute. A nil error is kept as-is.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
