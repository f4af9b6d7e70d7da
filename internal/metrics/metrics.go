// Package metrics registers the gateway's prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "payments_total",
			Help:      "Payment submissions by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gateway",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by path and status",
			Buckets: []float64{
				0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10,
			},
		},
		[]string{"path", "status"},
	)
)

func init() {
	prometheus.MustRegister(PaymentsTotal, RequestDuration)
}

func IncPayment(method, outcome string) {
	PaymentsTotal.WithLabelValues(method, outcome).Inc()
}

func ObserveRequest(path, status string, seconds float64) {
	RequestDuration.WithLabelValues(path, status).Observe(seconds)
}
