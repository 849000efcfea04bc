package analyze

import (
	"math"
	"testing"

	"github.com/dd0wney/chemflow/pkg/entry"
	"github.com/dd0wney/chemflow/pkg/relate"
)

// Same formula in two clusters links one representative per cluster,
// not every pair of entries.
func TestSameMaterialLinksClusterRepresentatives(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a1", Formula: "Au4", Type: "geo", ClusterKey: "u1"},
		{ID: "a2", Formula: "Au4", Type: "scf", ClusterKey: "u1"},
		{ID: "b1", Formula: "Au4", Type: "geo", ClusterKey: "u2"},
		{ID: "b2", Formula: "Au4", Type: "scf", ClusterKey: "u2"},
	}

	candidates, err := NewSameMaterial().Analyze(entries, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate (one per cluster pair), got %d", len(candidates))
	}

	c := findCandidate(t, candidates, "a1", "b1", relate.KindSameMaterial)
	if math.Abs(c.Confidence-0.8) > 1e-9 {
		t.Errorf("Confidence = %f, want 0.8", c.Confidence)
	}
}

// Three clusters on one formula pair up exhaustively.
func TestSameMaterialAllClusterPairs(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", Formula: "Si2", Type: "scf", ClusterKey: "u1"},
		{ID: "b", Formula: "Si2", Type: "scf", ClusterKey: "u2"},
		{ID: "c", Formula: "Si2", Type: "scf", ClusterKey: "u3"},
	}

	candidates, err := NewSameMaterial().Analyze(entries, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates for 3 clusters, got %d", len(candidates))
	}
	findCandidate(t, candidates, "a", "b", relate.KindSameMaterial)
	findCandidate(t, candidates, "a", "c", relate.KindSameMaterial)
	findCandidate(t, candidates, "b", "c", relate.KindSameMaterial)
}

// Formula-less and cluster-less entries never participate, and a
// formula confined to one cluster produces nothing.
func TestSameMaterialSkipsIncompleteEntries(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", Formula: "Au4", Type: "scf", ClusterKey: "u1"},
		{ID: "b", Formula: "Au4", Type: "scf", ClusterKey: "u1"},
		{ID: "c", Formula: "", Type: "scf", ClusterKey: "u2"},
		{ID: "d", Formula: "Ag2", Type: "scf", ClusterKey: ""},
	}

	candidates, err := NewSameMaterial().Analyze(entries, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("Expected no candidates, got %+v", candidates)
	}
}
