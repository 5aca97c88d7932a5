package store

import "time"

// Run is one recorded analysis of an old/new source pair.
type Run struct {
	ID        int64
	OldPath   string
	NewPath   string
	CreatedAt time.Time
}

// Change is one declaration's row in a run: classification on both sides,
// whether the body changed, and the gate verdict.
type Change struct {
	ID    int64
	RunID int64

	Name       string
	Kind       string
	MethodLike bool

	OldAccessibility string
	NewAccessibility string
	OldAsync         bool
	NewAsync         bool
	OldIterator      bool
	NewIterator      bool

	BodyChanged bool
	Structural  bool
	Fault       string

	Allowed bool
	Reason  string
}
