// Package analyze holds the pluggable cross-cluster heuristics. Each
// analyzer consumes the full entry population and emits relationship
// candidates under its own kind tag and confidence policy; the engine
// imposes nothing beyond the [0,1] confidence clamp. New relationship
// kinds arrive as new Analyzer implementations, never as new branches in
// the adjacency classifier.
package analyze

import (
	"fmt"

	"github.com/dd0wney/chemflow/pkg/chem"
	"github.com/dd0wney/chemflow/pkg/entry"
	"github.com/dd0wney/chemflow/pkg/relate"
)

// Options restricts what an analyzer run sees.
type Options struct {
	// ClusterFilter restricts processing to one cluster key. Empty means
	// all clusters.
	ClusterFilter string

	// ElementFilter restricts analysis to entries whose formula contains
	// the element symbol. Empty means no restriction.
	ElementFilter string
}

// Analyzer is one pluggable heuristic over the entry population.
type Analyzer interface {
	// Name identifies the analyzer in logs and reports.
	Name() string

	// Analyze inspects the (already filtered) entries and produces
	// relationship candidates.
	Analyze(entries []entry.Entry, opts Options) ([]relate.Candidate, error)
}

// Filter applies the option restrictions to an entry sequence,
// preserving order.
func Filter(entries []entry.Entry, opts Options) []entry.Entry {
	if opts.ClusterFilter == "" && opts.ElementFilter == "" {
		return entries
	}

	var out []entry.Entry
	for _, e := range entries {
		if opts.ClusterFilter != "" && e.ClusterKey != opts.ClusterFilter {
			continue
		}
		if opts.ElementFilter != "" && !chem.ParseFormula(e.Formula).Contains(opts.ElementFilter) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Registry holds analyzers in registration order, so runs stay
// deterministic.
type Registry struct {
	analyzers []Analyzer
	byName    map[string]bool
}

// NewRegistry creates an empty analyzer registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]bool)}
}

// DefaultRegistry returns a registry with the built-in analyzers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewClusterSizeSeries())
	r.Register(NewPeriodicTrend())
	r.Register(NewIsoelectronic())
	r.Register(NewParameterStudy())
	r.Register(NewSameMaterial())
	return r
}

// Register adds an analyzer. Names must be unique.
func (r *Registry) Register(a Analyzer) error {
	if r.byName[a.Name()] {
		return fmt.Errorf("analyzer %q already registered", a.Name())
	}
	r.byName[a.Name()] = true
	r.analyzers = append(r.analyzers, a)
	return nil
}

// Analyzers returns the registered analyzers in registration order.
func (r *Registry) Analyzers() []Analyzer {
	return r.analyzers
}

// RunAll filters the population once and runs every analyzer over it,
// concatenating candidates in registration order. An analyzer error is
// wrapped with its name and stops the run; analyzers are deterministic,
// so a failure means bad input, not a transient condition.
func (r *Registry) RunAll(entries []entry.Entry, opts Options) ([]relate.Candidate, error) {
	filtered := Filter(entries, opts)

	var all []relate.Candidate
	for _, a := range r.analyzers {
		candidates, err := a.Analyze(filtered, opts)
		if err != nil {
			return nil, fmt.Errorf("analyzer %s: %w", a.Name(), err)
		}
		all = append(all, candidates...)
	}
	return all, nil
}
