package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies spans produced by the catalog.
const instrumentationName = "magazine-catalog"

// GetTracer returns the tracer for creating spans.
// It is resolved on every call so a provider installed after start-up is honoured.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
