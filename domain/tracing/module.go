// Package tracing installs the process-wide OTel TracerProvider.
package tracing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/Narturebelle/Narturebelle/internal/config"
	"github.com/Narturebelle/Narturebelle/internal/version"
)

// Module installs a TracerProvider (OTLP or no-op) and shuts it down on
// app stop. HTTP spans are added by the server when tracing is enabled.
var Module = fx.Module("tracing",
	fx.Provide(NewTracerProvider),
	fx.Invoke(RegisterTracingLifecycle),
)

type tracerProviderResult struct {
	fx.Out

	// SDKProvider is nil when tracing is disabled.
	SDKProvider *sdktrace.TracerProvider `name:"otelSDKProvider" optional:"true"`
}

// NewTracerProvider creates and globally registers a TracerProvider.
func NewTracerProvider(cfg *config.Config, log *slog.Logger) (tracerProviderResult, error) {
	oc := cfg.Otel

	if !oc.Enabled() {
		log.Info("OTel tracing disabled (OTEL_EXPORTER_OTLP_ENDPOINT not set)")
		otel.SetTracerProvider(noop.NewTracerProvider())
		return tracerProviderResult{}, nil
	}

	log.Info("OTel tracing enabled",
		slog.String("endpoint", oc.ExporterEndpoint),
		slog.String("service", oc.ServiceName),
		slog.Float64("sampling_rate", oc.SamplingRate),
	)

	exp, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpointURL(oc.ExporterEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return tracerProviderResult{}, err
	}

	res, err := resource.New(context.Background(),
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(oc.ServiceName),
			semconv.ServiceVersion(version.Version),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
		resource.WithFromEnv(),
	)
	if err != nil {
		log.Warn("OTel resource detection failed", slog.String("error", err.Error()))
		res = resource.Empty()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(Sampler(oc.SamplingRate)),
	)

	otel.SetTracerProvider(tp)

	return tracerProviderResult{SDKProvider: tp}, nil
}

// Sampler maps OTEL_SAMPLING_RATE onto a parent-based sampler.
func Sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case rate <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))
	}
}

type sdkProviderParam struct {
	fx.In
	SDKProvider *sdktrace.TracerProvider `name:"otelSDKProvider" optional:"true"`
}

// RegisterTracingLifecycle flushes and shuts the SDK provider down on app stop.
func RegisterTracingLifecycle(lc fx.Lifecycle, p sdkProviderParam, log *slog.Logger) {
	if p.SDKProvider == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down OTel TracerProvider")
			return p.SDKProvider.Shutdown(ctx)
		},
	})
}
