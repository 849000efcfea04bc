package relate

// Candidate is one inferred relationship between two entries, produced
// and consumed within a single run. Confidence is a heuristic proxy for
// evidence strength, not a calibrated probability; it is always clamped
// to [0, 1].
type Candidate struct {
	FromID     string
	ToID       string
	Kind       Kind
	Confidence float64

	// ClusterKey records provenance: the workflow cluster the candidate
	// was inferred within. Empty for cross-cluster analyzers.
	ClusterKey string
}

// ClampConfidence bounds a raw additive score to [0, 1]. Partial scores
// may sum past 1.0; negative values never survive either.
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
