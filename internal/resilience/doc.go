// Package resilience provides reliability and fault tolerance patterns for the
// upstream clients.
//
// The package supports:
//   - Circuit breakers for the email alert API, where 4xx answers are not failures
//   - Retry logic with exponential backoff and jitter for idempotent content store reads
//
// The email alert API is never retried: each mutation is attempted exactly once.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.EmailAlertAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callEmailAlertAPI()
//	})
//
//	attempts, err := retry.Do(ctx, retry.ContentStoreConfig(), func(ctx context.Context) error {
//	    return fetchContentItem(ctx)
//	})
package resilience
