package engine

import (
	"github.com/dd0wney/chemflow/pkg/validation"
)

// Config carries the knobs for one inference run.
type Config struct {
	// MinConfidence drops candidates below the threshold before any edge
	// is written. Must stay within [0, 1].
	MinConfidence float64 `yaml:"min_confidence"`

	// ClusterFilter restricts the run to a single workflow cluster.
	// Empty means all clusters.
	ClusterFilter string `yaml:"cluster_filter"`

	// ElementFilter restricts the run to entries whose formula contains
	// the element. Empty means all entries.
	ElementFilter string `yaml:"element_filter"`

	// Workers sizes the classification worker pool. Zero means one
	// worker per CPU.
	Workers int `yaml:"workers"`

	// BatchSize bounds per-batch edge upserts. Zero means the builder
	// default.
	BatchSize int `yaml:"batch_size"`
}

// Validate checks the configuration, collecting all violations.
func (c *Config) Validate() error {
	return validation.NewConfigValidator("EngineConfig").
		RangeFloat("MinConfidence", c.MinConfidence, 0.0, 1.0).
		NonNegative("Workers", c.Workers).
		NonNegative("BatchSize", c.BatchSize).
		When(c.BatchSize > 0, func(v *validation.ConfigValidator) {
			v.Custom("BatchSize", func() error {
				return validation.ValidateBatchSize(c.BatchSize)
			})
		}).
		Validate()
}
