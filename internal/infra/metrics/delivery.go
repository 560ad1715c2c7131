package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(deliveryLatencySeconds, schedulesCreatedTotal) }

var deliveryLatencySeconds = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "relay_delivery_latency_seconds",
		Help:    "Downstream delivery latency distribution.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	},
	[]string{"success"},
)

var schedulesCreatedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "relay_schedules_created_total",
		Help: "One-shot redelivery triggers created, labeled by result.",
	},
	[]string{"result"}, // 'created', 'failed'
)

func ObserveDelivery(seconds float64, success bool) {
	deliveryLatencySeconds.WithLabelValues(strconv.FormatBool(success)).Observe(seconds)
}

func IncScheduleCreated(result string) {
	schedulesCreatedTotal.WithLabelValues(norm(result)).Inc()
}
