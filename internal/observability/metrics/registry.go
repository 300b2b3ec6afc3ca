// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	// Buckets capture fast (5-25ms), normal (50-250ms) and slow (0.5-10s) responses.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight tracks the current number of HTTP requests being processed
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// HTTPRequestSize measures HTTP request body size in bytes
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)
)

// Business metrics track signup and subscription management outcomes
var (
	// SignupLookupsTotal counts content item lookups by document type and result
	SignupLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signup_lookups_total",
			Help: "Total number of content item lookups for email signup",
		},
		[]string{"document_type", "result"},
	)

	// SubscriberListsTotal counts find-or-create subscriber list calls by result
	SubscriberListsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriber_lists_total",
			Help: "Total number of subscriber list find-or-create requests",
		},
		[]string{"result"}, // result: success, failure
	)

	// ManagementOutcomesTotal counts subscription management operations by outcome
	ManagementOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_management_outcomes_total",
			Help: "Total number of subscription management operations by outcome",
		},
		[]string{"operation", "outcome"},
	)
)

// Upstream metrics track calls to external services
var (
	// UpstreamRequestDuration measures upstream call duration in seconds
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of calls to upstream services in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"service", "operation", "status"},
	)

	// UpstreamRetriesTotal counts repeated attempts of an idempotent upstream read
	UpstreamRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_retries_total",
			Help: "Total number of retried calls to upstream services",
		},
		[]string{"service", "operation"},
	)

	// CircuitBreakerOpen reports 1 while the named circuit breaker rejects calls
	CircuitBreakerOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_open",
			Help: "Whether the circuit breaker is open (1) or not (0)",
		},
		[]string{"name"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
