package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "geolens"

// Geo backend and enrichment Prometheus metrics.
var (
	BackendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Total number of geo backend requests",
		},
		[]string{"operation", "status"}, // status: "success" / "error"
	)

	BackendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Geo backend request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	BackendErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_errors_total",
			Help:      "Total geo backend errors",
		},
		[]string{"operation", "error_type"},
	)

	EnrichmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enrichments_total",
			Help:      "Enrichment results by provenance",
		},
		// provenance: "live" / "simulated"; reason: "ok" or the fallback cause
		[]string{"domain", "provenance", "reason"},
	)

	ToolInvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_invocations_total",
			Help:      "Interactive tool invocations by outcome",
		},
		[]string{"tool", "outcome"}, // "published" / "ignored" / "error"
	)
)

var backendMetricsRegistered bool

// RegisterBackendMetrics registers geo backend metrics. Must be called once from main.
func RegisterBackendMetrics() {
	if backendMetricsRegistered {
		return
	}
	prometheus.MustRegister(BackendRequestsTotal)
	prometheus.MustRegister(BackendRequestDuration)
	prometheus.MustRegister(BackendErrorsTotal)
	prometheus.MustRegister(EnrichmentsTotal)
	prometheus.MustRegister(ToolInvocationsTotal)
	backendMetricsRegistered = true
}
