// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (signup lookups, subscriber lists, subscription management)
//   - Upstream call metrics for the email alert API and content store
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "github.com/Tubbz-alt/email-alert-frontend/internal/observability/metrics"
//
//	func changeFrequency(ctx context.Context) error {
//	    start := time.Now()
//	    err := api.ChangeSubscription(ctx, id, frequency)
//	    metrics.RecordUpstreamCall(metrics.UpstreamEmailAlertAPI, "change_subscription", metrics.StatusOf(err), time.Since(start))
//	    return err
//	}
package metrics
