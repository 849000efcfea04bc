package analyze

import (
	"github.com/dd0wney/chemflow/pkg/entry"
	"github.com/dd0wney/chemflow/pkg/relate"
)

const confidenceSameMaterial = 0.8

// SameMaterial connects calculations on the same chemical formula that
// live in different clusters: two groups both studying Au4 are almost
// certainly related work even when nothing else ties them together.
// One representative per (formula, cluster), first seen wins; every
// cluster pair sharing the formula gets one edge.
type SameMaterial struct{}

// NewSameMaterial creates the same-material analyzer.
func NewSameMaterial() *SameMaterial {
	return &SameMaterial{}
}

func (a *SameMaterial) Name() string {
	return "same_material"
}

func (a *SameMaterial) Analyze(entries []entry.Entry, opts Options) ([]relate.Candidate, error) {
	type slot struct {
		formula string
		cluster string
	}
	reps := make(map[slot]string)
	clusters := make(map[string][]string)
	var formulaOrder []string

	for _, e := range entries {
		if e.Formula == "" || e.ClusterKey == "" {
			continue
		}
		s := slot{e.Formula, e.ClusterKey}
		if _, ok := reps[s]; ok {
			continue
		}
		reps[s] = e.ID
		if len(clusters[e.Formula]) == 0 {
			formulaOrder = append(formulaOrder, e.Formula)
		}
		clusters[e.Formula] = append(clusters[e.Formula], e.ClusterKey)
	}

	var candidates []relate.Candidate
	for _, formula := range formulaOrder {
		keys := clusters[formula]
		if len(keys) < 2 {
			continue
		}
		for i := 0; i < len(keys); i++ {
			for j := i + 1; j < len(keys); j++ {
				candidates = append(candidates, relate.Candidate{
					FromID:     reps[slot{formula, keys[i]}],
					ToID:       reps[slot{formula, keys[j]}],
					Kind:       relate.KindSameMaterial,
					Confidence: confidenceSameMaterial,
				})
			}
		}
	}
	return candidates, nil
}
