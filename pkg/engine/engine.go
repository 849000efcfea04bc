// Package engine orchestrates a full inference run: population
// validation, per-cluster pairwise classification, cross-cluster
// analyzers and the final edge build against a graph store.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/chemflow/pkg/analyze"
	"github.com/dd0wney/chemflow/pkg/entry"
	"github.com/dd0wney/chemflow/pkg/graph"
	"github.com/dd0wney/chemflow/pkg/logging"
	"github.com/dd0wney/chemflow/pkg/metrics"
	"github.com/dd0wney/chemflow/pkg/parallel"
	"github.com/dd0wney/chemflow/pkg/relate"
)

// Engine runs relationship inference over entry populations. One engine
// can serve many runs; each run gets its own id and report.
type Engine struct {
	store     graph.EdgeStore
	analyzers *analyze.Registry
	metrics   *metrics.Registry
	logger    logging.Logger
	config    Config
}

// RunReport summarizes one completed inference run.
type RunReport struct {
	RunID                string
	Entries              int
	Clusters             int
	CandidatesConsidered int
	EdgesUpserted        int
	EdgesFailed          []graph.FailedEdge
	Duration             time.Duration
}

// New creates an engine writing to the given store. A nil logger
// discards output; a nil metrics registry falls back to the process
// default.
func New(store graph.EdgeStore, cfg Config, logger logging.Logger, m *metrics.Registry) (*Engine, error) {
	if store == nil {
		return nil, errors.New("engine requires an edge store")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if m == nil {
		m = metrics.DefaultRegistry()
	}

	return &Engine{
		store:     store,
		analyzers: analyze.DefaultRegistry(),
		metrics:   m,
		logger:    logger.With(logging.Component("engine")),
		config:    cfg,
	}, nil
}

// SetAnalyzers replaces the analyzer registry. Must be called before
// the first run.
func (e *Engine) SetAnalyzers(r *analyze.Registry) {
	e.analyzers = r
}

// Run executes one inference pass over the given entries. The entry set
// is validated as a whole; a conflicting duplicate id fails the run,
// while individual edge upsert failures are collected in the report.
func (e *Engine) Run(ctx context.Context, entries []entry.Entry) (*RunReport, error) {
	runID := uuid.NewString()
	log := e.logger.With(logging.RunID(runID))
	start := time.Now()

	e.metrics.RunsInFlight.Inc()
	defer e.metrics.RunsInFlight.Dec()

	timer := logging.StartTimer(log, "inference run", logging.Count(len(entries)))

	report, err := e.run(ctx, log, entries)
	if err != nil {
		var inputErr *entry.InputError
		if errors.As(err, &inputErr) && inputErr.EntryID != "" {
			log.Error("population rejected",
				logging.EntryID(inputErr.EntryID),
				logging.Error(err),
			)
		}
		e.metrics.RecordRun("error", time.Since(start))
		timer.EndError(err)
		return nil, err
	}

	report.RunID = runID
	report.Duration = time.Since(start)
	e.metrics.RecordRun("success", report.Duration)
	timer.End()

	return report, nil
}

func (e *Engine) run(ctx context.Context, log logging.Logger, entries []entry.Entry) (*RunReport, error) {
	opts := analyze.Options{
		ClusterFilter: e.config.ClusterFilter,
		ElementFilter: e.config.ElementFilter,
	}
	// The element filter narrows only the analyzer population (applied
	// inside RunAll); adjacency inference still sees every entry in the
	// scoped clusters, formula-less ones included.
	scoped := analyze.Filter(entries, analyze.Options{ClusterFilter: e.config.ClusterFilter})

	pop, err := entry.NewPopulation(scoped)
	if err != nil {
		return nil, fmt.Errorf("invalid entry population: %w", err)
	}

	clusters := pop.Clusters()
	keys := pop.ClusterKeys()
	e.metrics.IngestClustersTotal.Set(float64(len(keys)))

	classifyStart := time.Now()
	perCluster, err := parallel.Map(e.config.Workers, keys, func(key string) ([]relate.Candidate, error) {
		cluster := clusters[key]
		e.metrics.ClassifyClusterEntries.Observe(float64(len(cluster)))
		candidates := relate.ClassifyCluster(cluster)
		log.Debug("cluster classified",
			logging.ClusterKey(key),
			logging.Count(len(candidates)),
		)
		return candidates, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cluster classification failed: %w", err)
	}
	e.metrics.RecordClassify("pairwise", time.Since(classifyStart))

	var candidates []relate.Candidate
	for _, chunk := range perCluster {
		candidates = append(candidates, chunk...)
	}
	e.recordCandidates(candidates, "pairwise")

	analyzeStart := time.Now()
	for _, a := range e.analyzers.Analyzers() {
		log.Debug("analyzer enabled", logging.Analyzer(a.Name()))
	}
	analyzed, err := e.analyzers.RunAll(pop.Entries(), opts)
	if err != nil {
		return nil, fmt.Errorf("analyzer run failed: %w", err)
	}
	e.metrics.RecordClassify("analyzer", time.Since(analyzeStart))
	e.recordCandidates(analyzed, "analyzer")

	candidates = append(candidates, analyzed...)

	builder := graph.NewBuilder(e.store, log)
	builder.MinConfidence = e.config.MinConfidence
	builder.BatchSize = e.config.BatchSize

	result, err := builder.Build(ctx, candidates)
	if err != nil {
		return nil, err
	}
	e.metrics.RecordBuild(result.EdgesUpserted, len(result.EdgesFailed),
		result.EdgesDeduped, result.EdgesBelowConfidence)

	return &RunReport{
		Entries:              pop.Len(),
		Clusters:             len(keys),
		CandidatesConsidered: result.CandidatesConsidered,
		EdgesUpserted:        result.EdgesUpserted,
		EdgesFailed:          result.EdgesFailed,
	}, nil
}

func (e *Engine) recordCandidates(candidates []relate.Candidate, source string) {
	byKind := make(map[relate.Kind]int)
	for _, c := range candidates {
		byKind[c.Kind]++
	}
	for kind, count := range byKind {
		e.metrics.RecordCandidates(string(kind), source, count)
	}
}
