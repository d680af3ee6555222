package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// total requests per endpoint, method and status code
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adweave_requests_total",
			Help: "Total API requests received",
		},
		[]string{"endpoint", "method", "status"},
	)

	// request latency in seconds per endpoint/method
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adweave_request_duration_seconds",
			Help:    "Histogram of request latencies",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// ads inserted, labelled by placement kind
	AdsInsertedCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adweave_ads_inserted_total",
			Help: "Total ad units inserted into enhanced content",
		},
		[]string{"placement"},
	)

	// configs that passed eligibility but found no insertion point
	PlacementSkipCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adweave_placement_skips_total",
			Help: "Eligible ad configs skipped because no insertion point matched",
		},
		[]string{"endpoint"},
	)

	// distribution of quality scores produced by the scorer
	SeoScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "adweave_seo_score",
			Help:    "Distribution of quality scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestCount,
		RequestLatency,
		AdsInsertedCount,
		PlacementSkipCount,
		SeoScoreHistogram,
	)
}
