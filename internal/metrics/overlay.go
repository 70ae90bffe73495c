package metrics

import "github.com/prometheus/client_golang/prometheus"

// Overlay build metrics.
var (
	OverlayBuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overlay_builds_total",
			Help:      "Total number of overlay computations",
		},
		[]string{"domain"},
	)

	OverlayBuildDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "overlay_build_duration_seconds",
			Help:      "Overlay computation duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"domain"},
	)
)

var overlayMetricsRegistered bool

// RegisterOverlayMetrics registers overlay metrics. Must be called once from main.
func RegisterOverlayMetrics() {
	if overlayMetricsRegistered {
		return
	}
	prometheus.MustRegister(OverlayBuildsTotal)
	prometheus.MustRegister(OverlayBuildDuration)
	overlayMetricsRegistered = true
}
