// Package graph holds the persisted edge model, the graph-store boundary
// and the builder that turns relationship candidates into idempotent
// edge upserts.
package graph

import (
	"fmt"

	"github.com/dd0wney/chemflow/pkg/relate"
)

// Edge is the durable record written to the graph store. For a given
// (from, to, kind) triple at most one edge exists; re-running inference
// over unchanged input overwrites the properties instead of appending.
type Edge struct {
	FromID     string
	ToID       string
	Kind       relate.Kind
	Confidence float64
	ClusterKey string
}

// Key is the uniqueness triple for an edge.
type Key struct {
	FromID string
	ToID   string
	Kind   relate.Kind
}

// Key returns the uniqueness triple.
func (e Edge) Key() Key {
	return Key{FromID: e.FromID, ToID: e.ToID, Kind: e.Kind}
}

func (k Key) String() string {
	return fmt.Sprintf("%s→%s[%s]", k.FromID, k.ToID, k.Kind)
}

// edgeFromCandidate lifts a surviving candidate into the persisted model.
func edgeFromCandidate(c relate.Candidate) Edge {
	return Edge{
		FromID:     c.FromID,
		ToID:       c.ToID,
		Kind:       c.Kind,
		Confidence: relate.ClampConfidence(c.Confidence),
		ClusterKey: c.ClusterKey,
	}
}
