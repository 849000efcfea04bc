package analyze

import (
	"github.com/dd0wney/chemflow/pkg/chem"
	"github.com/dd0wney/chemflow/pkg/entry"
	"github.com/dd0wney/chemflow/pkg/relate"
)

const confidenceIsoelectronic = 0.8

// Isoelectronic connects calculations on species with equal total
// electron counts but different formulas (N2 and CO, both 14
// electrons). Such species share electronic structure and are a classic
// comparison axis in electronic-structure studies.
type Isoelectronic struct{}

// NewIsoelectronic creates the isoelectronic analyzer.
func NewIsoelectronic() *Isoelectronic {
	return &Isoelectronic{}
}

func (a *Isoelectronic) Name() string {
	return "isoelectronic"
}

func (a *Isoelectronic) Analyze(entries []entry.Entry, opts Options) ([]relate.Candidate, error) {
	// One representative per (electron count, formula), first seen wins;
	// a group chains representatives in input order.
	type slot struct {
		electrons int
		formula   string
	}
	seen := make(map[slot]bool)
	groups := make(map[int][]string)
	var countOrder []int

	for _, e := range entries {
		comp := chem.ParseFormula(e.Formula)
		electrons, ok := comp.ElectronCount()
		if !ok {
			continue
		}
		s := slot{electrons, e.Formula}
		if seen[s] {
			continue
		}
		seen[s] = true
		if len(groups[electrons]) == 0 {
			countOrder = append(countOrder, electrons)
		}
		groups[electrons] = append(groups[electrons], e.ID)
	}

	var candidates []relate.Candidate
	for _, electrons := range countOrder {
		ids := groups[electrons]
		if len(ids) < 2 {
			continue
		}
		for i := 0; i < len(ids)-1; i++ {
			candidates = append(candidates, relate.Candidate{
				FromID:     ids[i],
				ToID:       ids[i+1],
				Kind:       relate.KindIsoelectronic,
				Confidence: confidenceIsoelectronic,
			})
		}
	}
	return candidates, nil
}
