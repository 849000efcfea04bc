package relate

import (
	"github.com/dd0wney/chemflow/pkg/entry"
	"github.com/dd0wney/chemflow/pkg/stage"
)

// Confidence weights for the adjacency classifier. The base applies to
// every adjacent pair; the bonuses add evidence for shared material,
// file handoff and stage compatibility. These are tunable heuristic
// constants with no statistical calibration behind them.
const (
	ConfidenceBase        = 0.5
	BonusSameFormula      = 0.3
	BonusFileHandoff      = 0.2
	BonusCompatibleStages = 0.2
)

// kindRule pairs a predicate over an ordered entry pair with a
// relationship kind. Rules are evaluated first-match-wins, so the list
// order is the precedence order. Absent lexical cues are not an error:
// the final rule always matches and yields the lowest-confidence default.
type kindRule struct {
	match func(a, b entry.Entry) bool
	kind  Kind
}

var kindRules = []kindRule{
	{
		// geometry/optimization feeding electronic-structure convergence
		match: func(a, b entry.Entry) bool {
			return stage.BandOf(a.Type) == stage.BandStructure &&
				stage.BandOf(b.Type) == stage.BandElectronic
		},
		kind: KindProvidesStructure,
	},
	{
		// converged electronic structure feeding derived properties
		match: func(a, b entry.Entry) bool {
			return stage.BandOf(a.Type) == stage.BandElectronic &&
				stage.BandOf(b.Type) == stage.BandProperty
		},
		kind: KindProvidesElectronicStructure,
	},
	{
		// file handoff: outputs of a plausibly become inputs of b
		match: func(a, b entry.Entry) bool {
			return a.HasOutputFiles && b.HasInputFiles
		},
		kind: KindProvidesInputData,
	},
	{
		match: func(a, b entry.Entry) bool {
			return a.Type == b.Type
		},
		kind: KindSimilarCalculation,
	},
	{
		match: func(a, b entry.Entry) bool { return true },
		kind:  KindWorkflowStep,
	},
}

// ClassifyPair decides the relationship kind and confidence for an
// ordered pair of entries that are adjacent after stage-sorting within
// one cluster.
func ClassifyPair(a, b entry.Entry) Candidate {
	var kind Kind
	for _, rule := range kindRules {
		if rule.match(a, b) {
			kind = rule.kind
			break
		}
	}

	return Candidate{
		FromID:     a.ID,
		ToID:       b.ID,
		Kind:       kind,
		Confidence: pairConfidence(a, b),
		ClusterKey: a.ClusterKey,
	}
}

// pairConfidence scores the evidence for a relationship between two
// adjacent entries. Additive, then clamped.
func pairConfidence(a, b entry.Entry) float64 {
	confidence := ConfidenceBase

	if a.Formula != "" && a.Formula == b.Formula {
		confidence += BonusSameFormula
	}
	if a.HasOutputFiles && b.HasInputFiles {
		confidence += BonusFileHandoff
	}
	if stage.Adjacent(stage.BandOf(a.Type), stage.BandOf(b.Type)) {
		confidence += BonusCompatibleStages
	}

	return ClampConfidence(confidence)
}

// ClassifyCluster stage-sorts one cluster and classifies each adjacent
// pair. A cluster with fewer than two entries yields no candidates and
// no error. The cluster key must be non-empty; the implicit no-key group
// is never classified.
func ClassifyCluster(cluster []entry.Entry) []Candidate {
	if len(cluster) < 2 {
		return nil
	}

	sorted := stage.SortCluster(cluster)
	candidates := make([]Candidate, 0, len(sorted)-1)
	for i := 0; i < len(sorted)-1; i++ {
		candidates = append(candidates, ClassifyPair(sorted[i], sorted[i+1]))
	}
	return candidates
}
