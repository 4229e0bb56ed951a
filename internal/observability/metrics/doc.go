// Package metrics provides the Prometheus metrics registry and recording utilities.
//
// This package centralizes the catalog metrics:
//   - Gateway operation duration and error counts, per repository and operation
//   - Entities created, per entity kind
//   - Validation failures, per entity and field
//
// All metrics are registered with the Prometheus default registry. catalog-migrate
// pushes that registry to a Pushgateway before it exits (PUSHGATEWAY_URL).
//
// Example usage:
//
//	start := time.Now()
//	_, err := repo.Get(ctx, id)
//	metrics.RecordDBOperation("author", "Get", time.Since(start), err)
package metrics
