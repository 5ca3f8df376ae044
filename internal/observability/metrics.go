package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_prediction"

// Metrics holds the Prometheus collectors for upstream calls and the two API operations.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec   // labels: upstream, outcome={success,error,circuit_open}
	UpstreamDuration *prometheus.HistogramVec // labels: upstream
	Resolutions      *prometheus.CounterVec   // labels: outcome={resolved,ambiguous,not_found,upstream_failure}
	Predictions      *prometheus.CounterVec   // labels: label={Sunny,Rainy,invalid}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.Resolutions,
		m.Predictions,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream API requests by upstream and outcome.",
		}, []string{"upstream", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"upstream"}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Location resolutions by outcome.",
		}, []string{"outcome"}),
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Classifications by resulting label, or invalid on rejected input.",
		}, []string{"label"}),
	}
}
