package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"

	"github.com/Narturebelle/Narturebelle/internal/assets"
	"github.com/Narturebelle/Narturebelle/internal/config"
	"github.com/Narturebelle/Narturebelle/pkg/apperror"
	"github.com/Narturebelle/Narturebelle/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// NewRouter creates the chi router with the shared middleware stack and the
// embedded static files mounted. Domain modules add their own routes.
func NewRouter(log *slog.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		RequestLogger(log),
		Recoverer(log),
		middleware.StripSlashes,
	)

	static, err := assets.Handler()
	if err != nil {
		return nil, fmt.Errorf("mount static files: %w", err)
	}
	r.Handle("/static/*", static)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		apperror.WriteError(w, req, log, apperror.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		apperror.WriteError(w, req, log,
			apperror.New(http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed"))
	})

	return r, nil
}

func isProbe(path string) bool {
	return path == "/health" || path == "/healthz" || path == "/ready" || path == "/metrics"
}

// RequestLogger logs one line per request through slog, skipping probes.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isProbe(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			}
			if status >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
			} else {
				log.Info("request", attrs...)
			}
		})
	}
}

// Recoverer turns a panic into a 500 and logs the stack.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
				apperror.WriteError(w, r, nil, apperror.ErrInternal)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Handler wraps the router with otelhttp when tracing is enabled.
func Handler(r *chi.Mux, cfg *config.Config) http.Handler {
	if !cfg.Otel.Enabled() {
		return r
	}
	return otelhttp.NewHandler(r, cfg.Otel.ServiceName,
		otelhttp.WithFilter(func(req *http.Request) bool {
			return !isProbe(req.URL.Path)
		}),
		otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
			return req.Method + " " + req.URL.Path
		}),
	)
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, r *chi.Mux, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      Handler(r, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", server.Addr, err)
			}
			log.Info("starting HTTP server",
				slog.String("address", ln.Addr().String()),
				slog.String("url", cfg.BaseURL()),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
