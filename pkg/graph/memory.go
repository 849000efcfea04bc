package graph

import (
	"context"
	"sync"
)

// MemoryStore is an in-process EdgeStore keyed by the uniqueness triple.
// It serializes all upserts behind one mutex, which satisfies the
// at-most-one-edge invariant under concurrent runs. Used by tests and by
// embedders that keep the graph in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	edges  map[Key]Edge
	closed bool
}

// NewMemoryStore creates an empty in-memory edge store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{edges: make(map[Key]Edge)}
}

// UpsertEdge creates or overwrites the edge for its triple.
func (s *MemoryStore) UpsertEdge(ctx context.Context, edge Edge) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateEdge(edge); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	s.edges[edge.Key()] = edge
	return nil
}

// GetEdge looks up an edge by its triple.
func (s *MemoryStore) GetEdge(key Key) (Edge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.edges[key]
	return e, ok
}

// EdgeCount returns the number of distinct triples stored.
func (s *MemoryStore) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}

// Edges returns a snapshot of all stored edges.
func (s *MemoryStore) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	return out
}

// Close marks the store closed; later upserts fail with ErrStoreClosed.
func (s *MemoryStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
