package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Document source metrics.
var (
	SourceQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "source_queries_total",
			Help:      "Total document source queries",
		},
		[]string{"op", "status"},
	)

	SourceQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "source_query_duration_seconds",
			Help:      "Document source query duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"op"},
	)

	SourceRowsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "source_rows_returned",
			Help:      "Rows returned per document source query",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		},
		[]string{"op"},
	)
)

var sourceOnce sync.Once

// RegisterSourceMetrics registers document source metrics. Call once from main.
func RegisterSourceMetrics() {
	sourceOnce.Do(func() {
		prometheus.MustRegister(SourceQueriesTotal, SourceQueryDuration, SourceRowsReturned)
	})
}
