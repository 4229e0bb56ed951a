// Package tracing provides OpenTelemetry tracing for persistence gateway operations.
//
// Spans are created through the global tracer provider, so the binary decides where
// they are exported. Without a configured provider the spans are no-ops.
//
// Example usage:
//
//	ctx, span := tracing.StartDBSpan(ctx, "sqlite", "AuthorRepo.Get")
//	defer func() { tracing.EndDBSpan(span, err) }()
package tracing
