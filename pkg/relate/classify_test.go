package relate

import (
	"math"
	"testing"

	"github.com/dd0wney/chemflow/pkg/entry"
)

// Geometry optimization feeding an scf calculation for the same material:
// PROVIDES_STRUCTURE at 0.5 base + 0.3 formula + 0.2 file handoff + 0.2
// adjacent bands, clamped to 1.0.
func TestClassifyPairProvidesStructure(t *testing.T) {
	a := entry.Entry{
		ID: "g1", Type: "geometry_optimization", Formula: "Au4",
		ClusterKey: "C", HasOutputFiles: true,
	}
	b := entry.Entry{
		ID: "s1", Type: "scf_calculation", Formula: "Au4",
		ClusterKey: "C", HasInputFiles: true, HasOutputFiles: true,
	}

	c := ClassifyPair(a, b)

	if c.Kind != KindProvidesStructure {
		t.Errorf("Kind = %s, want PROVIDES_STRUCTURE", c.Kind)
	}
	if c.FromID != "g1" || c.ToID != "s1" {
		t.Errorf("Edge direction %s→%s, want g1→s1", c.FromID, c.ToID)
	}
	if c.Confidence < 0.8 {
		t.Errorf("Confidence = %f, want >= 0.8 (matching formula)", c.Confidence)
	}
	if c.Confidence != 1.0 {
		t.Errorf("Confidence = %f, want clamp at 1.0 (raw sum 1.2)", c.Confidence)
	}
	if c.ClusterKey != "C" {
		t.Errorf("ClusterKey = %q, want C", c.ClusterKey)
	}
}

func TestClassifyPairProvidesElectronicStructure(t *testing.T) {
	a := entry.Entry{ID: "s1", Type: "scf_calculation", ClusterKey: "C"}
	b := entry.Entry{ID: "d1", Type: "dos_calculation", ClusterKey: "C"}

	c := ClassifyPair(a, b)
	if c.Kind != KindProvidesElectronicStructure {
		t.Errorf("Kind = %s, want PROVIDES_ELECTRONIC_STRUCTURE", c.Kind)
	}
}

// Identical free-text types without lexical cues: SIMILAR_CALCULATION at
// bare base confidence. No formula match, no handoff, no band bonus.
func TestClassifyPairSimilarCalculation(t *testing.T) {
	a := entry.Entry{ID: "x1", Type: "fhi-aims_calculation", ClusterKey: "C"}
	b := entry.Entry{ID: "x2", Type: "fhi-aims_calculation", ClusterKey: "C"}

	c := ClassifyPair(a, b)

	if c.Kind != KindSimilarCalculation {
		t.Errorf("Kind = %s, want SIMILAR_CALCULATION", c.Kind)
	}
	if math.Abs(c.Confidence-0.5) > 1e-9 {
		t.Errorf("Confidence = %f, want 0.5 base only", c.Confidence)
	}
}

// File handoff outranks type similarity but yields to the lexical rules.
func TestClassifyPairProvidesInputData(t *testing.T) {
	a := entry.Entry{ID: "a", Type: "step_one", ClusterKey: "C", HasOutputFiles: true}
	b := entry.Entry{ID: "b", Type: "step_one", ClusterKey: "C", HasInputFiles: true}

	c := ClassifyPair(a, b)
	if c.Kind != KindProvidesInputData {
		t.Errorf("Kind = %s, want PROVIDES_INPUT_DATA (handoff beats same type)", c.Kind)
	}
}

// Absent cues never fail: the fallback kind is WORKFLOW_STEP.
func TestClassifyPairFallback(t *testing.T) {
	a := entry.Entry{ID: "a", Type: "misc_one", ClusterKey: "C"}
	b := entry.Entry{ID: "b", Type: "misc_two", ClusterKey: "C"}

	c := ClassifyPair(a, b)
	if c.Kind != KindWorkflowStep {
		t.Errorf("Kind = %s, want WORKFLOW_STEP fallback", c.Kind)
	}
}

// Lexical rules outrank the file-handoff rule.
func TestClassifyPairPrecedence(t *testing.T) {
	a := entry.Entry{ID: "g1", Type: "geometry_optimization", ClusterKey: "C", HasOutputFiles: true}
	b := entry.Entry{ID: "s1", Type: "scf_calculation", ClusterKey: "C", HasInputFiles: true}

	c := ClassifyPair(a, b)
	if c.Kind != KindProvidesStructure {
		t.Errorf("Kind = %s, lexical rule must win over handoff", c.Kind)
	}
}

func TestClassifyClusterOrdersByStage(t *testing.T) {
	cluster := []entry.Entry{
		{ID: "d1", Type: "dos", ClusterKey: "C"},
		{ID: "g1", Type: "geometry_optimization", ClusterKey: "C"},
		{ID: "s1", Type: "scf_calculation", ClusterKey: "C"},
	}

	candidates := ClassifyCluster(cluster)

	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].FromID != "g1" || candidates[0].ToID != "s1" {
		t.Errorf("First pair %s→%s, want g1→s1", candidates[0].FromID, candidates[0].ToID)
	}
	if candidates[1].FromID != "s1" || candidates[1].ToID != "d1" {
		t.Errorf("Second pair %s→%s, want s1→d1", candidates[1].FromID, candidates[1].ToID)
	}
}

// Single-entry cluster: zero pairs, zero error.
func TestClassifyClusterSingleEntry(t *testing.T) {
	candidates := ClassifyCluster([]entry.Entry{{ID: "only", Type: "scf", ClusterKey: "C"}})
	if len(candidates) != 0 {
		t.Errorf("Expected no candidates, got %d", len(candidates))
	}
}

func TestClassifyClusterNoSelfLoops(t *testing.T) {
	cluster := []entry.Entry{
		{ID: "a", Type: "scf", ClusterKey: "C"},
		{ID: "b", Type: "scf", ClusterKey: "C"},
		{ID: "c", Type: "dos", ClusterKey: "C"},
	}

	for _, c := range ClassifyCluster(cluster) {
		if c.FromID == c.ToID {
			t.Errorf("Self-loop %s→%s", c.FromID, c.ToID)
		}
	}
}

func TestClampConfidence(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.3, 0},
		{0, 0},
		{0.7, 0.7},
		{1.0, 1.0},
		{1.2, 1.0},
	}
	for _, tt := range tests {
		if got := ClampConfidence(tt.in); got != tt.want {
			t.Errorf("ClampConfidence(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{
		KindProvidesStructure, KindProvidesElectronicStructure,
		KindProvidesInputData, KindSimilarCalculation, KindWorkflowStep,
		KindPeriodicTrend, KindClusterSizeSeries, KindParameterStudy,
		KindIsoelectronic, KindSameMaterial,
	} {
		if !k.Valid() {
			t.Errorf("Kind %s should be valid", k)
		}
	}
	if Kind("MADE_UP").Valid() {
		t.Error("Unknown kind should be invalid")
	}
}
