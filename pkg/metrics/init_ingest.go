package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initIngestMetrics() {
	r.IngestEntriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "chemflow_ingest_entries_total",
			Help: "Total number of entries read from a source",
		},
		[]string{"status"},
	)

	r.IngestClustersTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "chemflow_ingest_clusters_total",
			Help: "Number of workflow clusters in the last loaded population",
		},
	)

	r.IngestDecodeDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chemflow_ingest_decode_duration_seconds",
			Help:    "Time spent decoding an entry source",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
		},
	)
}
