package graph

import (
	"context"
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrStoreClosed = errors.New("graph store is closed")
	ErrSelfLoop    = errors.New("edge endpoints are identical")
	ErrInvalidKind = errors.New("edge kind is outside the closed enumeration")
)

// EdgeStore is the single operation the inference core requires of a
// property-graph store. Upsert semantics: create the edge if the triple
// is absent, otherwise overwrite its confidence and cluster-key
// properties. The store (or the caller's serialization) enforces the
// at-most-one-edge-per-triple invariant.
type EdgeStore interface {
	UpsertEdge(ctx context.Context, edge Edge) error
}

// UpsertError wraps a store failure for one edge. Edge upserts are
// independent units of work: one failing edge never aborts the batch.
type UpsertError struct {
	Edge  Edge
	Cause error
}

func (e *UpsertError) Error() string {
	return fmt.Sprintf("upsert %s: %v", e.Edge.Key(), e.Cause)
}

func (e *UpsertError) Unwrap() error {
	return e.Cause
}

// validateEdge rejects edges that violate the data model before they
// reach any store.
func validateEdge(edge Edge) error {
	if edge.FromID == edge.ToID {
		return ErrSelfLoop
	}
	if !edge.Kind.Valid() {
		return ErrInvalidKind
	}
	return nil
}
