package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initClassifyMetrics() {
	r.CandidatesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "chemflow_candidates_total",
			Help: "Total number of relationship candidates produced",
		},
		[]string{"kind", "source"},
	)

	r.ClassifyDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chemflow_classify_duration_seconds",
			Help:    "Classification duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"phase"},
	)

	r.ClassifyClusterEntries = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chemflow_classify_cluster_entries",
			Help:    "Number of entries per classified cluster",
			Buckets: []float64{2, 5, 10, 25, 50, 100, 500},
		},
	)
}
