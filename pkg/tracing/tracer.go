// Package tracing provides a shared OTel tracer helper for the domain packages.
//
// When no TracerProvider is registered (tests, local runs without an OTLP
// endpoint) the global no-op provider is used and every call is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "narturebelle"

// Start creates a new span as a child of the span in ctx, or a root span
// when ctx carries none. The caller must end the span.
//
//	ctx, span := tracing.Start(ctx, "contact.submit",
//	    attribute.String("narturebelle.session.id", id),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}
