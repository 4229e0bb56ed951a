package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StartDBSpan starts a client span for one gateway operation.
// system is the store dialect ("sqlite", "postgres"), operation is "<Repo>.<Method>".
func StartDBSpan(ctx context.Context, system, operation string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", system),
			attribute.String("db.operation", operation),
		),
	)
}

// EndDBSpan records err on the span, if any, and ends it.
func EndDBSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
