package entry

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrDuplicateID   = errors.New("duplicate entry id")
	ErrConflictingID = errors.New("conflicting entries share an id")
	ErrEmptyID       = errors.New("entry id is empty")
)

// InputError provides structured error information for input-integrity
// failures. Any InputError is fatal to the run: it is surfaced before any
// graph mutation is attempted.
type InputError struct {
	Op      string // Operation that failed (e.g., "NewPopulation")
	EntryID string // Offending entry id (if applicable)
	Field   string // Field that differs between conflicting entries
	Cause   error  // Underlying sentinel
	Context string // Additional context
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.EntryID != "" {
		if e.Field != "" {
			return fmt.Sprintf("%s entry %q (field %s): %v", e.Op, e.EntryID, e.Field, e.Cause)
		}
		return fmt.Sprintf("%s entry %q: %v", e.Op, e.EntryID, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *InputError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// diffField names the first immutable field that differs between two
// entries sharing an id, for error reporting.
func diffField(a, b Entry) string {
	switch {
	case a.Type != b.Type:
		return "type"
	case a.Formula != b.Formula:
		return "formula"
	case a.ClusterKey != b.ClusterKey:
		return "cluster_key"
	case a.HasInputFiles != b.HasInputFiles:
		return "has_input_files"
	case a.HasOutputFiles != b.HasOutputFiles:
		return "has_output_files"
	}
	return ""
}
