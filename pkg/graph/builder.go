package graph

import (
	"context"

	"github.com/dd0wney/chemflow/pkg/logging"
	"github.com/dd0wney/chemflow/pkg/relate"
)

// DefaultBatchSize bounds how many upserts are issued per batch. Batch
// sizing is a resource policy for the store integration, not a
// correctness requirement.
const DefaultBatchSize = 500

// Builder deduplicates relationship candidates and issues one upsert per
// surviving edge. Running it twice on identical input produces an
// identical edge set.
type Builder struct {
	store EdgeStore

	// MinConfidence drops candidates below the threshold before upsert.
	MinConfidence float64

	// BatchSize bounds the per-batch upsert count. Zero means
	// DefaultBatchSize.
	BatchSize int

	logger logging.Logger
}

// FailedEdge records one edge the store rejected, with its reason.
type FailedEdge struct {
	Edge   Edge
	Reason error
}

// Result summarizes one builder run.
type Result struct {
	CandidatesConsidered int
	EdgesUpserted        int
	EdgesDeduped         int
	EdgesBelowConfidence int
	EdgesFailed          []FailedEdge
}

// NewBuilder creates a Builder writing to the given store.
func NewBuilder(store EdgeStore, logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Builder{store: store, logger: logger.With(logging.Component("edge_builder"))}
}

// Dedupe collapses candidates onto distinct triples. On collision the
// highest-confidence candidate wins; ties keep the earliest-produced
// candidate, so output order is deterministic for a fixed input. The
// returned edges preserve first-seen triple order.
func Dedupe(candidates []relate.Candidate) []Edge {
	best := make(map[Key]int, len(candidates))
	kept := make([]Edge, 0, len(candidates))

	for _, c := range candidates {
		e := edgeFromCandidate(c)
		key := e.Key()
		if i, seen := best[key]; seen {
			if e.Confidence > kept[i].Confidence {
				kept[i] = e
			}
			continue
		}
		best[key] = len(kept)
		kept = append(kept, e)
	}

	return kept
}

// Build deduplicates, filters and upserts the candidate set. Store
// failures are collected per edge and never abort the batch; any
// candidate-stage failure would already have happened before Build is
// called.
func (b *Builder) Build(ctx context.Context, candidates []relate.Candidate) (*Result, error) {
	result := &Result{CandidatesConsidered: len(candidates)}

	edges := Dedupe(candidates)
	result.EdgesDeduped = len(candidates) - len(edges)

	surviving := edges[:0]
	for _, e := range edges {
		if e.Confidence >= b.MinConfidence {
			surviving = append(surviving, e)
		}
	}
	result.EdgesBelowConfidence = len(edges) - len(surviving)

	batchSize := b.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	for start := 0; start < len(surviving); start += batchSize {
		end := start + batchSize
		if end > len(surviving) {
			end = len(surviving)
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		for _, e := range surviving[start:end] {
			if err := b.store.UpsertEdge(ctx, e); err != nil {
				upsertErr := &UpsertError{Edge: e, Cause: err}
				result.EdgesFailed = append(result.EdgesFailed, FailedEdge{Edge: e, Reason: upsertErr})
				b.logger.Warn("edge upsert failed",
					logging.String("from", e.FromID),
					logging.String("to", e.ToID),
					logging.Kind(string(e.Kind)),
					logging.Confidence(e.Confidence),
					logging.Error(err),
				)
				continue
			}
			result.EdgesUpserted++
		}
	}

	b.logger.Info("edge build complete",
		logging.Int("candidates", result.CandidatesConsidered),
		logging.Int("upserted", result.EdgesUpserted),
		logging.Int("failed", len(result.EdgesFailed)),
	)

	return result, nil
}
