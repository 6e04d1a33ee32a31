package metrics

import "github.com/prometheus/client_golang/prometheus"

// Generation Prometheus metrics.
var (
	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cybersearch",
			Name:      "generations_total",
			Help:      "Total number of vector generations",
		},
		[]string{"status"}, // "ok" / "refused"
	)

	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cybersearch",
			Name:      "generation_duration_seconds",
			Help:      "Vector generation duration in seconds",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
	)

	VectorsBuiltTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cybersearch",
			Name:      "vectors_built_total",
			Help:      "Total vectors built across all generations",
		},
	)

	DiagnosticsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cybersearch",
			Name:      "diagnostics_total",
			Help:      "Total diagnostics emitted by kind",
		},
		[]string{"kind"},
	)
)

var genMetricsRegistered bool

// RegisterGenerationMetrics registers Prometheus generation metrics. Must be called once from main.
func RegisterGenerationMetrics() {
	if genMetricsRegistered {
		return
	}
	prometheus.MustRegister(GenerationsTotal)
	prometheus.MustRegister(GenerationDuration)
	prometheus.MustRegister(VectorsBuiltTotal)
	prometheus.MustRegister(DiagnosticsTotal)
	genMetricsRegistered = true
}
