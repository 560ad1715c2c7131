package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(extractionFailuresTotal, extractionSegments) }

var extractionFailuresTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "relay_extraction_failures_total",
		Help: "Transcript extraction failures, labeled by error kind.",
	},
	[]string{"kind"},
)

var extractionSegments = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "relay_extraction_segments",
		Help:    "Number of caption segments per successful extraction.",
		Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000},
	},
)

func IncExtractionFailure(kind string) {
	extractionFailuresTotal.WithLabelValues(norm(kind)).Inc()
}

func ObserveExtractionSegments(n int) {
	extractionSegments.Observe(float64(n))
}
