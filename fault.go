package regraft

import "fmt"

// ConsistencyError reports a caller-contract violation: the old/new trees
// handed to a matching or correlation call were not actually congruent
// outside the edit (or a zero-width node was passed where one is not
// supported). It is unrecoverable for the current operation — the violated
// assumption lives upstream, not in these trees.
type ConsistencyError struct {
	// Assumption names the invariant that did not hold.
	Assumption string
	// Old and New describe the nodes at the point of divergence, when known.
	Old, New NodeRef
}

func (e *ConsistencyError) Error() string {
	if e.Old.IsValid() || e.New.IsValid() {
		return fmt.Sprintf("regraft: consistency fault: %s (old %v, new %v)", e.Assumption, e.Old, e.New)
	}
	return fmt.Sprintf("regraft: consistency fault: %s", e.Assumption)
}

func faultf(old, new NodeRef, format string, args ...any) *ConsistencyError {
	return &ConsistencyError{Assumption: fmt.Sprintf(format, args...), Old: old, New: new}
}
