// Package resilience groups the fault tolerance helpers used around the catalog store.
//
// The subpackages are:
//   - circuitbreaker: a sony/gobreaker wrapper that guards connection acquisition
//   - retry: exponential backoff with jitter for start-up connectivity
//
// Usage Example:
//
//	dcb := circuitbreaker.NewDBCircuitBreaker(sqlDB)
//	authors := sqlite.NewAuthorRepo(dcb)
//
//	err := retry.WithBackoff(ctx, retry.StartupConfig(), func() error {
//	    return sqlDB.PingContext(ctx)
//	})
package resilience
