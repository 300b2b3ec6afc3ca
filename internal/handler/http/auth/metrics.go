package auth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultMissing = "missing"
	resultExpired = "expired"
	resultInvalid = "invalid"
)

var (
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriber_auth_requests_total",
			Help: "Subscriber authentication attempts by result",
		},
		[]string{"result"}, // success | missing | expired | invalid
	)

	authDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "subscriber_auth_duration_seconds",
			Help:    "Time spent validating subscriber tokens",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)
)

// RecordAuthRequest records an authentication attempt.
func RecordAuthRequest(result string) {
	authRequestsTotal.WithLabelValues(result).Inc()
}

// RecordAuthDuration records how long token validation took.
func RecordAuthDuration(d time.Duration) {
	authDuration.Observe(d.Seconds())
}
