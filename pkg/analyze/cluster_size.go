package analyze

import (
	"sort"

	"github.com/dd0wney/chemflow/pkg/chem"
	"github.com/dd0wney/chemflow/pkg/entry"
	"github.com/dd0wney/chemflow/pkg/relate"
)

// Confidence per series variant. A same-element progression (Au2 → Au4)
// is near-certain to be a deliberate series; a family progression is
// weaker evidence, a global atom-count progression weaker still.
const (
	confidenceSameElement  = 0.95
	confidenceFamilySeries = 0.85
	confidenceGlobalSeries = 0.75
)

// ClusterSizeSeries connects calculations on growing clusters of the
// same element (and, more loosely, the same chemical family) from
// smaller to larger: Au2 → Au4 → Au8. Cross-cluster by nature, so
// candidates carry no cluster-key provenance.
type ClusterSizeSeries struct{}

// NewClusterSizeSeries creates the cluster-size-series analyzer.
func NewClusterSizeSeries() *ClusterSizeSeries {
	return &ClusterSizeSeries{}
}

func (a *ClusterSizeSeries) Name() string {
	return "cluster_size_series"
}

// sizedEntry is one parsed entry eligible for size-series analysis.
type sizedEntry struct {
	id      string
	element string
	family  chem.Family
	size    int
}

func (a *ClusterSizeSeries) Analyze(entries []entry.Entry, opts Options) ([]relate.Candidate, error) {
	parsed := parseSized(entries)

	var candidates []relate.Candidate
	candidates = append(candidates, seriesByKey(parsed,
		func(s sizedEntry) (string, bool) { return s.element, true },
		confidenceSameElement)...)
	candidates = append(candidates, seriesByKey(parsed,
		func(s sizedEntry) (string, bool) { return string(s.family), s.family != chem.FamilyUnknown },
		confidenceFamilySeries)...)
	candidates = append(candidates, seriesByKey(parsed,
		func(s sizedEntry) (string, bool) { return "all", true },
		confidenceGlobalSeries)...)

	return candidates, nil
}

// parseSized extracts the primary element, family and cluster size for
// every entry with a parseable formula, in input order.
func parseSized(entries []entry.Entry) []sizedEntry {
	var out []sizedEntry
	for _, e := range entries {
		comp := chem.ParseFormula(e.Formula)
		primary, ok := comp.PrimaryElement()
		if !ok {
			continue
		}
		el, known := chem.LookupElement(primary)
		family := chem.FamilyUnknown
		if known {
			family = el.Family()
		}
		out = append(out, sizedEntry{
			id:      e.ID,
			element: primary,
			family:  family,
			size:    comp.TotalAtoms(),
		})
	}
	return out
}

// seriesByKey groups entries by a key, picks one representative per
// (key, size) — the first seen in input order — and chains the
// representatives from smaller to larger size. Keys with a single size
// produce nothing.
func seriesByKey(parsed []sizedEntry, keyOf func(sizedEntry) (string, bool), confidence float64) []relate.Candidate {
	type sizeKey struct {
		key  string
		size int
	}
	representatives := make(map[sizeKey]string)
	sizesPerKey := make(map[string][]int)
	var keyOrder []string

	for _, s := range parsed {
		key, ok := keyOf(s)
		if !ok {
			continue
		}
		sk := sizeKey{key, s.size}
		if _, seen := representatives[sk]; seen {
			continue
		}
		representatives[sk] = s.id
		if len(sizesPerKey[key]) == 0 {
			keyOrder = append(keyOrder, key)
		}
		sizesPerKey[key] = append(sizesPerKey[key], s.size)
	}

	var candidates []relate.Candidate
	for _, key := range keyOrder {
		sizes := sizesPerKey[key]
		if len(sizes) < 2 {
			continue
		}
		sort.Ints(sizes)
		for i := 0; i < len(sizes)-1; i++ {
			from := representatives[sizeKey{key, sizes[i]}]
			to := representatives[sizeKey{key, sizes[i+1]}]
			if from == to {
				continue
			}
			candidates = append(candidates, relate.Candidate{
				FromID:     from,
				ToID:       to,
				Kind:       relate.KindClusterSizeSeries,
				Confidence: confidence,
			})
		}
	}
	return candidates
}
