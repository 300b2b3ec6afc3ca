package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "config_load_timestamp_seconds",
		Help: "Unix timestamp of the last configuration load",
	})

	fallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "config_fallbacks_total",
		Help: "Configuration values ignored in favour of a fallback, by key",
	}, []string{"key"})

	fallbackActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "config_fallback_active",
		Help: "1 if the running configuration uses any fallback value, 0 otherwise",
	})
)

// RecordLoad publishes the outcome of a configuration load.
func RecordLoad(warnings []Warning) {
	loadTimestamp.SetToCurrentTime()
	for _, w := range warnings {
		fallbacksTotal.WithLabelValues(w.Key).Inc()
	}
	if len(warnings) > 0 {
		fallbackActive.Set(1)
	} else {
		fallbackActive.Set(0)
	}
}
