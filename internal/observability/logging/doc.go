// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the catalog.
//
// Key features:
//   - JSON and text output formats
//   - Entity annotations (kind and id)
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New(os.Stdout, "info", logging.FormatJSON)
//	    logger.Info("catalog started", slog.String("driver", "sqlite"))
//	}
//
//	func create(ctx context.Context, id int64) {
//	    logger := logging.WithEntity(logging.FromContext(ctx), "author", id)
//	    logger.Info("author created")
//	}
package logging
