package analyze

import (
	"github.com/dd0wney/chemflow/pkg/entry"
	"github.com/dd0wney/chemflow/pkg/relate"
)

const confidenceParameterStudy = 0.85

// ParameterStudy connects repeated calculations of the same kind on the
// same material within one workflow cluster: the same formula and type
// showing up more than once normally means a convergence or
// parameter-variation sequence. Entries chain in input order, which
// mirrors the sequence the calculations were recorded in.
type ParameterStudy struct{}

// NewParameterStudy creates the parameter-study analyzer.
func NewParameterStudy() *ParameterStudy {
	return &ParameterStudy{}
}

func (a *ParameterStudy) Name() string {
	return "parameter_study"
}

func (a *ParameterStudy) Analyze(entries []entry.Entry, opts Options) ([]relate.Candidate, error) {
	type studyKey struct {
		cluster string
		formula string
		calc    string
	}
	chains := make(map[studyKey][]string)
	var keyOrder []studyKey

	for _, e := range entries {
		// Parameter studies only make sense inside one workflow cluster
		// and for a known material.
		if e.ClusterKey == "" || e.Formula == "" {
			continue
		}
		key := studyKey{e.ClusterKey, e.Formula, e.Type}
		if len(chains[key]) == 0 {
			keyOrder = append(keyOrder, key)
		}
		chains[key] = append(chains[key], e.ID)
	}

	var candidates []relate.Candidate
	for _, key := range keyOrder {
		ids := chains[key]
		if len(ids) < 2 {
			continue
		}
		for i := 0; i < len(ids)-1; i++ {
			candidates = append(candidates, relate.Candidate{
				FromID:     ids[i],
				ToID:       ids[i+1],
				Kind:       relate.KindParameterStudy,
				Confidence: confidenceParameterStudy,
				ClusterKey: key.cluster,
			})
		}
	}
	return candidates, nil
}
