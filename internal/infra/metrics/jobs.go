package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(jobsProcessedTotal, jobDurationSeconds) }

var jobsProcessedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "relay_jobs_processed_total",
		Help: "Total number of queue jobs processed, labeled by resolution.",
	},
	[]string{"resolution"}, // 'delivered', 'ack', 'redeliver', 'schedule_retry', 'none'
)

var jobDurationSeconds = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "relay_job_duration_seconds",
		Help:    "End to end processing time per job (extraction + delivery).",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	},
)

func IncJob(resolution string) {
	jobsProcessedTotal.WithLabelValues(norm(resolution)).Inc()
}

func ObserveJobDuration(seconds float64) {
	jobDurationSeconds.Observe(seconds)
}
