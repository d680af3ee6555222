package observability

import "time"

// MetricsRegistry records application metrics behind an interface so
// handlers can be tested without touching the global Prometheus registry.
type MetricsRegistry interface {
	IncrementRequests(endpoint, method, status string)
	RecordRequestLatency(endpoint, method string, duration time.Duration)

	IncrementAdsInserted(placement string)
	IncrementPlacementSkips(endpoint string)
	ObserveSeoScore(score int)
}

// PrometheusRegistry implements MetricsRegistry on the package-level
// Prometheus collectors.
type PrometheusRegistry struct{}

// NewPrometheusRegistry creates a new PrometheusRegistry.
func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{}
}

func (r *PrometheusRegistry) IncrementRequests(endpoint, method, status string) {
	RequestCount.WithLabelValues(endpoint, method, status).Inc()
}

func (r *PrometheusRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {
	RequestLatency.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

func (r *PrometheusRegistry) IncrementAdsInserted(placement string) {
	AdsInsertedCount.WithLabelValues(placement).Inc()
}

func (r *PrometheusRegistry) IncrementPlacementSkips(endpoint string) {
	PlacementSkipCount.WithLabelValues(endpoint).Inc()
}

func (r *PrometheusRegistry) ObserveSeoScore(score int) {
	SeoScoreHistogram.Observe(float64(score))
}
