package metrics

import (
	"runtime"
	"time"
)

// RecordIngest records the outcome of loading an entry source
func (r *Registry) RecordIngest(accepted, rejected, clusters int, duration time.Duration) {
	r.IngestEntriesTotal.WithLabelValues("accepted").Add(float64(accepted))
	r.IngestEntriesTotal.WithLabelValues("rejected").Add(float64(rejected))
	r.IngestClustersTotal.Set(float64(clusters))
	r.IngestDecodeDuration.Observe(duration.Seconds())
}

// RecordCandidates records candidates produced by one classification source
func (r *Registry) RecordCandidates(kind, source string, count int) {
	r.CandidatesTotal.WithLabelValues(kind, source).Add(float64(count))
}

// RecordClassify records one classification phase
func (r *Registry) RecordClassify(phase string, duration time.Duration) {
	r.ClassifyDuration.WithLabelValues(phase).Observe(duration.Seconds())
}

// RecordBuild records the outcome of an edge build
func (r *Registry) RecordBuild(upserted, failed, deduped, belowConfidence int) {
	r.EdgesUpsertedTotal.Add(float64(upserted))
	r.EdgesFailedTotal.Add(float64(failed))
	r.EdgesDedupedTotal.Add(float64(deduped))
	r.EdgesBelowConfidence.Add(float64(belowConfidence))
}

// RecordRun records a completed inference run
func (r *Registry) RecordRun(status string, duration time.Duration) {
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(duration.Seconds())
	r.LastRunTimestamp.Set(float64(time.Now().Unix()))
}

// UpdateSystemMetrics refreshes process-level gauges
func (r *Registry) UpdateSystemMetrics(startTime time.Time) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.UptimeSeconds.Set(time.Since(startTime).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
	r.MemorySysBytes.Set(float64(m.Sys))
}
