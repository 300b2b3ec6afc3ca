package metrics

import (
	"context"
	"errors"
	"time"
)

// Signup lookup results.
const (
	ResultSuccess     = "success"
	ResultRedirect    = "redirect"
	ResultUnsupported = "unsupported"
	ResultNotFound    = "not_found"
	ResultInvalid     = "invalid"
	ResultUnavailable = "unavailable"
)

// Subscription management operations.
const (
	OperationListSubscriptions = "list_subscriptions"
	OperationChangeFrequency   = "change_frequency"
	OperationChangeAddress     = "change_address"
	OperationUnsubscribeAll    = "unsubscribe_all"
)

// Upstream service names.
const (
	UpstreamEmailAlertAPI = "email_alert_api"
	UpstreamContentStore  = "content_store"
)

// RecordSignupLookup records the result of resolving a content item for signup.
// documentType is empty when the item could not be fetched.
func RecordSignupLookup(documentType, result string) {
	if documentType == "" {
		documentType = "unknown"
	}
	SignupLookupsTotal.WithLabelValues(documentType, result).Inc()
}

// RecordSubscriberList records the result of a find-or-create subscriber list request.
func RecordSubscriberList(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	SubscriberListsTotal.WithLabelValues(result).Inc()
}

// RecordManagementOutcome records the outcome of a subscription management operation.
// Outcome is a short token such as "success", "not_found" or "invalid_frequency".
func RecordManagementOutcome(operation, outcome string) {
	ManagementOutcomesTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordUpstreamCall records the duration of a call to an upstream service.
func RecordUpstreamCall(service, operation, status string, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(service, operation, status).Observe(duration.Seconds())
}

// RecordUpstreamRetry records one retry of an upstream call.
func RecordUpstreamRetry(service, operation string) {
	UpstreamRetriesTotal.WithLabelValues(service, operation).Inc()
}

// StatusOf maps an upstream call error to a low-cardinality status label.
func StatusOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}

// SetCircuitBreakerOpen updates the open state of the named circuit breaker.
func SetCircuitBreakerOpen(name string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	CircuitBreakerOpen.WithLabelValues(name).Set(v)
}
