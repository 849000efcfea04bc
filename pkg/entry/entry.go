package entry

// Entry describes one computational-chemistry calculation. Entries are
// read-only inputs for an inference run; all fields except the file flags
// are treated as immutable identity data.
type Entry struct {
	// ID is the opaque, globally unique identity key.
	ID string `json:"entry_id" validate:"required"`

	// Type is a free-text calculation kind. The engine only ever inspects
	// it through case-insensitive substring matching.
	Type string `json:"entry_type"`

	// Formula is the chemical formula. Empty means unknown.
	Formula string `json:"formula,omitempty"`

	// ClusterKey groups entries into one workflow, typically the
	// originating upload or dataset. Entries without a cluster key are
	// excluded from adjacency-based inference but remain visible to
	// cross-cluster analyzers.
	ClusterKey string `json:"cluster_key,omitempty"`

	HasInputFiles  bool `json:"has_input_files"`
	HasOutputFiles bool `json:"has_output_files"`
}

// Same reports whether two entries carry identical field values.
// Used to distinguish a plain duplicate from an integrity violation.
func (e Entry) Same(other Entry) bool {
	return e == other
}
