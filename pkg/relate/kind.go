package relate

// Kind is the closed enumeration of workflow relationship kinds. The
// adjacency classifier only ever emits the first five; analyzers own the
// remaining tags. New kinds arrive with new analyzers, not with new
// branches in the classifier.
type Kind string

const (
	// Adjacency-based kinds, in classifier precedence order.
	KindProvidesStructure           Kind = "PROVIDES_STRUCTURE"
	KindProvidesElectronicStructure Kind = "PROVIDES_ELECTRONIC_STRUCTURE"
	KindProvidesInputData           Kind = "PROVIDES_INPUT_DATA"
	KindSimilarCalculation          Kind = "SIMILAR_CALCULATION"
	KindWorkflowStep                Kind = "WORKFLOW_STEP"

	// Analyzer-owned kinds.
	KindPeriodicTrend     Kind = "PERIODIC_TREND"
	KindClusterSizeSeries Kind = "CLUSTER_SIZE_SERIES"
	KindParameterStudy    Kind = "PARAMETER_STUDY"
	KindIsoelectronic     Kind = "ISOELECTRONIC"
	KindSameMaterial      Kind = "SAME_MATERIAL"
)

// Valid reports whether the kind belongs to the closed enumeration.
func (k Kind) Valid() bool {
	switch k {
	case KindProvidesStructure, KindProvidesElectronicStructure,
		KindProvidesInputData, KindSimilarCalculation, KindWorkflowStep,
		KindPeriodicTrend, KindClusterSizeSeries, KindParameterStudy,
		KindIsoelectronic, KindSameMaterial:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}
