// Package viewmetrics wraps the view engine and reference condenser
// with Prometheus counters and histograms, for operators running the
// engine as part of a larger service. It never sits in the engine's own
// call graph — it wraps calls to it from the outside.
package viewmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every counter and histogram this package exposes,
// mirroring the single-struct-of-promauto-vecs shape the teacher's
// observability package uses.
type Metrics struct {
	BuildDuration          *prometheus.HistogramVec
	BuildTotal             *prometheus.CounterVec
	ManipulationIndexCount prometheus.Histogram
	CondensationForgotten  prometheus.Counter
	CondensationTotal      prometheus.Counter
}

// NewMetrics registers every metric against reg and returns the
// wrapper. Pass prometheus.NewRegistry() in tests to avoid colliding
// with the default global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BuildDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "viewengine_build_duration_seconds",
			Help:    "Time to build a view from a raw event sequence.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		BuildTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "viewengine_build_total",
			Help: "Total number of build_view calls, by outcome.",
		}, []string{"outcome"}),
		ManipulationIndexCount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "viewengine_manipulation_indices_count",
			Help:    "Number of safe manipulation indices computed per build.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500},
		}),
		CondensationForgotten: factory.NewCounter(prometheus.CounterOpts{
			Name: "viewengine_condensation_forgotten_total",
			Help: "Total number of events forgotten across all condensations.",
		}),
		CondensationTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "viewengine_condensation_total",
			Help: "Total number of Condensation events produced by the reference condenser.",
		}),
	}
}

// RecordBuild records the outcome and duration of one build_view call.
func (m *Metrics) RecordBuild(outcome string, duration time.Duration, manipulationIndexCount int) {
	m.BuildTotal.WithLabelValues(outcome).Inc()
	m.BuildDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	if outcome == "ok" {
		m.ManipulationIndexCount.Observe(float64(manipulationIndexCount))
	}
}

// RecordCondensation records a condensation that forgot forgottenCount events.
func (m *Metrics) RecordCondensation(forgottenCount int) {
	m.CondensationTotal.Inc()
	m.CondensationForgotten.Add(float64(forgottenCount))
}
