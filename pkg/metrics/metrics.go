// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ChatRoundTripsTotal tracks chat round-trips per assistant and outcome.
	ChatRoundTripsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_round_trips_total",
			Help: "Total chat round-trips",
		},
		[]string{"assistant", "outcome"},
	)

	// CompletionDuration tracks upstream completion latency.
	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "completion_duration_seconds",
			Help:    "Upstream completion latency in seconds",
			Buckets: []float64{.25, .5, 1, 2, 5, 10, 20, 30, 45, 60},
		},
		[]string{"provider", "status"},
	)

	// DegradedResponsesTotal tracks canned replies served after upstream failures.
	DegradedResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degraded_responses_total",
			Help: "Chat responses degraded to a canned reply",
		},
		[]string{"assistant", "reason"},
	)

	// StoreErrorsTotal tracks persistence failures by operation.
	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Conversation store failures",
		},
		[]string{"operation"},
	)

	// IdentityExchangesTotal tracks identity-token exchanges by result.
	IdentityExchangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "identity_exchanges_total",
			Help: "Identity assertion exchanges",
		},
		[]string{"result"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordCompletion records the latency of one upstream completion call.
func RecordCompletion(provider, status string, seconds float64) {
	CompletionDuration.WithLabelValues(provider, status).Observe(seconds)
}

// RecordStoreError counts a persistence failure for the given operation.
func RecordStoreError(operation string) {
	StoreErrorsTotal.WithLabelValues(operation).Inc()
}
