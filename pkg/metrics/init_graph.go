package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.EdgesUpsertedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "chemflow_graph_edges_upserted_total",
			Help: "Total number of edges written to the graph store",
		},
	)

	r.EdgesFailedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "chemflow_graph_edges_failed_total",
			Help: "Total number of edge upserts that failed",
		},
	)

	r.EdgesDedupedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "chemflow_graph_edges_deduped_total",
			Help: "Total number of candidates collapsed by deduplication",
		},
	)

	r.EdgeUpsertDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chemflow_graph_edge_upsert_duration_seconds",
			Help:    "Edge upsert duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	r.EdgesBelowConfidence = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "chemflow_graph_edges_below_confidence_total",
			Help: "Total number of candidates dropped by the confidence floor",
		},
	)
}
