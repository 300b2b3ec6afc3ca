// Package observability groups the frontend's logging, metrics and tracing.
//
// Subpackages:
//   - logging: slog JSON logger with request-scoped fields and redaction
//   - metrics: Prometheus HTTP, upstream and business metrics
//   - tracing: OpenTelemetry provider setup, server middleware and client spans
//
// Example usage:
//
//	import (
//	    "github.com/Tubbz-alt/email-alert-frontend/internal/observability/logging"
//	    "github.com/Tubbz-alt/email-alert-frontend/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.New(os.Stdout, "info")
//	    logger.Info("application started")
//
//	    metrics.RecordSubscriberList(true)
//	}
package observability
