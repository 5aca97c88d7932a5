package main

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIChange is a JSON-friendly declaration change with its gate verdict.
type CLIChange struct {
	Name             string `json:"name"`
	Kind             string `json:"kind"`
	MethodLike       bool   `json:"method_like"`
	OldAccessibility string `json:"old_accessibility"`
	NewAccessibility string `json:"new_accessibility,omitempty"`
	OldAsync         bool   `json:"old_async"`
	NewAsync         bool   `json:"new_async"`
	OldIterator      bool   `json:"old_iterator"`
	NewIterator      bool   `json:"new_iterator"`
	AwaitCounts      [2]int `json:"await_counts"`
	YieldCounts      [2]int `json:"yield_counts"`
	BodyChanged      bool   `json:"body_changed"`
	Structural       bool   `json:"structural"`
	Fault            string `json:"fault,omitempty"`
	Allowed          bool   `json:"allowed"`
	Reason           string `json:"reason,omitempty"`
}

// CLIBody describes a located declaration body in one file.
type CLIBody struct {
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	Accessibility string `json:"accessibility"`
	Async         bool   `json:"async"`
	Iterator      bool   `json:"iterator"`
	BodyStart     int    `json:"body_start"`
	BodyEnd       int    `json:"body_end"`
	BodyKind      string `json:"body_kind,omitempty"`
}

// CLIPartner is the result of mapping a position across versions.
type CLIPartner struct {
	Position  int    `json:"position"`
	Kind      string `json:"kind"`
	OldStart  int    `json:"old_start"`
	OldEnd    int    `json:"old_end"`
	NewStart  int    `json:"new_start"`
	NewEnd    int    `json:"new_end"`
	LeafText  string `json:"leaf_text"`
}

// CLIRun is a JSON-friendly session-log run.
type CLIRun struct {
	ID        int64  `json:"id"`
	OldPath   string `json:"old_path"`
	NewPath   string `json:"new_path"`
	CreatedAt string `json:"created_at"`
}
