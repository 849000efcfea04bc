// Package stage assigns entries an execution-stage priority from lexical
// cues in the calculation type, following the conventional ordering of
// computational-chemistry pipelines: structural relaxation first, then
// electronic-structure convergence, then derived properties, then
// post-processing.
package stage

import (
	"sort"
	"strings"

	"github.com/dd0wney/chemflow/pkg/entry"
)

// Band is a stage-priority band. Lower means earlier in the workflow.
type Band int

const (
	BandStructure  Band = 10  // geometry relaxation / optimization
	BandElectronic Band = 20  // scf / dft convergence
	BandProperty   Band = 30  // dos / band structure
	BandPost       Band = 40  // analysis / post-processing
	BandDefault    Band = 100 // no lexical match
)

// Tie-break adjustment applied within a band from the file-presence
// flags: inputs without outputs look like an early step, outputs without
// inputs like a final one.
const fileFlagAdjust = 5

// bandRule pairs a set of type keywords with a band. Rules are evaluated
// in order and the first match wins, so the structural band shadows the
// electronic one when a type mentions both. New keyword rules are a data
// addition here, not a code change.
type bandRule struct {
	keywords []string
	band     Band
}

var bandRules = []bandRule{
	{[]string{"geometry", "optimization"}, BandStructure},
	{[]string{"scf", "dft"}, BandElectronic},
	{[]string{"dos", "band"}, BandProperty},
	{[]string{"analysis", "post"}, BandPost},
}

// BandOf returns the stage band for a calculation type. Matching is
// case-insensitive substring search; the lowest-numbered matching band
// wins.
func BandOf(calcType string) Band {
	lower := strings.ToLower(calcType)
	for _, rule := range bandRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.band
			}
		}
	}
	return BandDefault
}

// Score returns the full stage priority for an entry: its band plus the
// file-flag tie-break adjustment.
func Score(e entry.Entry) int {
	score := int(BandOf(e.Type))
	switch {
	case e.HasInputFiles && !e.HasOutputFiles:
		score -= fileFlagAdjust
	case e.HasOutputFiles && !e.HasInputFiles:
		score += fileFlagAdjust
	}
	return score
}

// Adjacent reports whether two bands are equal or neighbors in the band
// ladder, i.e. the corresponding calculation types are compatible steps
// of one workflow. The default band carries no lexical evidence, so it is
// compatible with nothing, itself included.
func Adjacent(a, b Band) bool {
	if a == BandDefault || b == BandDefault {
		return false
	}
	diff := int(a) - int(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 10
}

// SortCluster orders a cluster's entries by stage priority. The sort is
// stable: entries with equal score keep their input order, so repeated
// runs over the same cluster always produce the same sequence.
func SortCluster(entries []entry.Entry) []entry.Entry {
	sorted := make([]entry.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Score(sorted[i]) < Score(sorted[j])
	})
	return sorted
}
