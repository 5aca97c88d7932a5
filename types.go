package regraft

import "github.com/jward/regraft/internal/syntax"

// Public type aliases for the internal syntax types used across the API.
// These are Go type aliases (=) — identical to the internal types at
// compile time, so no conversion is needed at package boundaries.

type Tree = syntax.Tree
type NodeRef = syntax.NodeRef
type Span = syntax.Span
type Kind = syntax.Kind
