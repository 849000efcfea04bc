package entry

// Population is a validated, ordered collection of entries for one
// inference run. Construction fails on any repeated id: the engine
// receives a materialized, deduplicated sequence from its source, so a
// repeat is an upstream fault, and a repeat with differing fields is a
// data-integrity violation.
type Population struct {
	entries []Entry
	byID    map[string]Entry
}

// NewPopulation validates the input sequence and builds a Population.
// Returns an *InputError on empty ids or duplicate ids.
func NewPopulation(entries []Entry) (*Population, error) {
	byID := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, &InputError{Op: "NewPopulation", Cause: ErrEmptyID}
		}
		if prev, ok := byID[e.ID]; ok {
			if !prev.Same(e) {
				return nil, &InputError{
					Op:      "NewPopulation",
					EntryID: e.ID,
					Field:   diffField(prev, e),
					Cause:   ErrConflictingID,
				}
			}
			return nil, &InputError{Op: "NewPopulation", EntryID: e.ID, Cause: ErrDuplicateID}
		}
		byID[e.ID] = e
	}

	copied := make([]Entry, len(entries))
	copy(copied, entries)

	return &Population{entries: copied, byID: byID}, nil
}

// Len returns the number of entries.
func (p *Population) Len() int {
	return len(p.entries)
}

// Entries returns the entries in input order. Callers must not mutate
// the returned slice.
func (p *Population) Entries() []Entry {
	return p.entries
}

// Get looks up an entry by id.
func (p *Population) Get(id string) (Entry, bool) {
	e, ok := p.byID[id]
	return e, ok
}

// Clusters partitions the population by cluster key, preserving input
// order within each group (stable partition). Entries with an empty
// cluster key are collected under the empty key; adjacency-based
// classification must skip that group.
func (p *Population) Clusters() map[string][]Entry {
	groups := make(map[string][]Entry)
	for _, e := range p.entries {
		groups[e.ClusterKey] = append(groups[e.ClusterKey], e)
	}
	return groups
}

// ClusterKeys returns the non-empty cluster keys in first-seen order.
// Deterministic iteration order keeps runs reproducible.
func (p *Population) ClusterKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, e := range p.entries {
		if e.ClusterKey == "" || seen[e.ClusterKey] {
			continue
		}
		seen[e.ClusterKey] = true
		keys = append(keys, e.ClusterKey)
	}
	return keys
}
