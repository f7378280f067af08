package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the calculation
// boundary.
type Metrics struct {
	Computations    *prometheus.CounterVec // labels: outcome={ok,invalid,malformed}
	ComputeDuration prometheus.Histogram
	SessionsOpened  prometheus.Counter
}

// NewMetrics creates and registers the metrics with the default registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "thermowell",
			Name:      "computations_total",
			Help:      "Engine computations by outcome.",
		}, []string{"outcome"}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "thermowell",
			Name:      "compute_duration_seconds",
			Help:      "Duration of one engine computation including the sweep.",
			Buckets:   []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2},
		}),
		SessionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "thermowell",
			Name:      "sessions_opened_total",
			Help:      "Websocket sessions accepted.",
		}),
	}

	prometheus.MustRegister(
		m.Computations,
		m.ComputeDuration,
		m.SessionsOpened,
	)

	return m
}

// NewMetricsForTesting creates Metrics with no registration to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Computations:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "thermowell", Name: "computations_total"}, []string{"outcome"}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "thermowell", Name: "compute_duration_seconds"}),
		SessionsOpened:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "thermowell", Name: "sessions_opened_total"}),
	}
}
