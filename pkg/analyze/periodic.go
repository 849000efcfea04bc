package analyze

import (
	"sort"

	"github.com/dd0wney/chemflow/pkg/chem"
	"github.com/dd0wney/chemflow/pkg/entry"
	"github.com/dd0wney/chemflow/pkg/relate"
)

const confidencePeriodicTrend = 0.9

// PeriodicTrend connects calculations on same-size clusters of elements
// sharing a periodic-table group, chained by increasing period: the
// K2 → Rb2 → Cs2 alkali dimer series, Ne4 → Ar4 → Kr4 noble-gas
// tetramers, and so on. Same group and same stoichiometry is strong
// evidence of a deliberate trend study.
type PeriodicTrend struct{}

// NewPeriodicTrend creates the periodic-trend analyzer.
func NewPeriodicTrend() *PeriodicTrend {
	return &PeriodicTrend{}
}

func (a *PeriodicTrend) Name() string {
	return "periodic_trend"
}

func (a *PeriodicTrend) Analyze(entries []entry.Entry, opts Options) ([]relate.Candidate, error) {
	type groupKey struct {
		group int
		size  int
	}
	type member struct {
		id     string
		period int
	}

	// One representative per (group, size, period), first seen wins.
	members := make(map[groupKey][]member)
	seen := make(map[[3]int]bool)
	var keyOrder []groupKey

	for _, e := range entries {
		comp := chem.ParseFormula(e.Formula)
		primary, ok := comp.PrimaryElement()
		if !ok {
			continue
		}
		el, known := chem.LookupElement(primary)
		if !known || el.Group == 0 {
			continue
		}

		key := groupKey{el.Group, comp.TotalAtoms()}
		slot := [3]int{el.Group, comp.TotalAtoms(), el.Period}
		if seen[slot] {
			continue
		}
		seen[slot] = true
		if len(members[key]) == 0 {
			keyOrder = append(keyOrder, key)
		}
		members[key] = append(members[key], member{id: e.ID, period: el.Period})
	}

	var candidates []relate.Candidate
	for _, key := range keyOrder {
		series := members[key]
		if len(series) < 2 {
			continue
		}
		sort.Slice(series, func(i, j int) bool { return series[i].period < series[j].period })

		for i := 0; i < len(series)-1; i++ {
			candidates = append(candidates, relate.Candidate{
				FromID:     series[i].id,
				ToID:       series[i+1].id,
				Kind:       relate.KindPeriodicTrend,
				Confidence: confidencePeriodicTrend,
			})
		}
	}
	return candidates, nil
}
