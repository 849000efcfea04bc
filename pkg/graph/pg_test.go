package graph

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dd0wney/chemflow/pkg/relate"
)

// TestPGStoreRoundTrip exercises the PostgreSQL store against a real
// database. Set CHEMFLOW_TEST_POSTGRES_DSN to run it; it is skipped
// otherwise so the suite stays self-contained.
func TestPGStoreRoundTrip(t *testing.T) {
	dsn := os.Getenv("CHEMFLOW_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CHEMFLOW_TEST_POSTGRES_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := NewPGStore(ctx, dsn)
	if err != nil {
		t.Fatalf("NewPGStore failed: %v", err)
	}
	defer store.Close()

	edge := Edge{
		FromID:     "pgtest/geo",
		ToID:       "pgtest/scf",
		Kind:       relate.KindProvidesStructure,
		Confidence: 0.8,
		ClusterKey: "pgtest",
	}

	if err := store.UpsertEdge(ctx, edge); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}
	before, err := store.EdgeCount(ctx)
	if err != nil {
		t.Fatalf("EdgeCount failed: %v", err)
	}

	// Same triple, new confidence: overwrite, not a second row.
	edge.Confidence = 1.0
	if err := store.UpsertEdge(ctx, edge); err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}
	after, err := store.EdgeCount(ctx)
	if err != nil {
		t.Fatalf("EdgeCount failed: %v", err)
	}

	if before != after {
		t.Errorf("Upsert of an existing triple changed the count: %d -> %d", before, after)
	}

	if err := store.UpsertEdge(ctx, Edge{FromID: "x", ToID: "x", Kind: relate.KindWorkflowStep}); err == nil {
		t.Error("Expected self-loop rejection")
	}
}
