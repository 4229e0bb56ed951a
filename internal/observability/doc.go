// Package observability provides the observability infrastructure of the catalog:
// structured logging, Prometheus metrics, and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders for gateway operations
//   - tracing: OpenTelemetry spans around gateway operations
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.New(os.Stdout, "info", logging.FormatJSON)
//	    logger.Info("catalog started")
//
//	    metrics.RecordEntityCreated("author")
//	}
package observability
