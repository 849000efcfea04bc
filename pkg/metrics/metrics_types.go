package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Ingest Metrics
	IngestEntriesTotal   *prometheus.CounterVec
	IngestClustersTotal  prometheus.Gauge
	IngestDecodeDuration prometheus.Histogram

	// Classification Metrics
	CandidatesTotal        *prometheus.CounterVec
	ClassifyDuration       *prometheus.HistogramVec
	ClassifyClusterEntries prometheus.Histogram

	// Graph Metrics
	EdgesUpsertedTotal   prometheus.Counter
	EdgesFailedTotal     prometheus.Counter
	EdgesDedupedTotal    prometheus.Counter
	EdgeUpsertDuration   prometheus.Histogram
	EdgesBelowConfidence prometheus.Counter

	// Run Metrics
	RunsTotal        *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	RunsInFlight     prometheus.Gauge
	LastRunTimestamp prometheus.Gauge

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	// Initialize all metrics
	r.initIngestMetrics()
	r.initClassifyMetrics()
	r.initGraphMetrics()
	r.initRunMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
