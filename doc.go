// Package regraft correlates two versions of a syntax tree produced by an
// edit to a running program and classifies declaration nodes, so an
// edit-session engine can decide which executable regions changed and
// whether the change can be patched in place.
//
// # Model
//
// Trees come from the internal/csharp producer: an immutable arena of
// nodes, each with a closed-set [Kind], a byte [Span], ordered children
// whose spans exactly partition the parent span, and a parent index. An
// edit never mutates a tree; it produces a new one. Everything outside the
// edited span is structurally identical between the two versions — the
// isomorphic-region invariant — which is what makes positional index
// matching sound.
//
// # Operations
//
// The core exposes pure query functions over [NodeRef]:
//
//   - [Body] — locate the single executable-body node of a declaration.
//   - [FindPartner], [FindLeafNodeAndPartner] — map a node or text position
//     in the old tree to its structural counterpart in the new tree.
//   - [PartnerBody] — map an old lambda-or-query-clause body to the
//     corresponding body in an already-matched new lambda shape.
//   - [IsMethodLike], [HasBackingField], [AccessibilityFromModifiers],
//     [IsAsyncMethodOrLambda], [IsIteratorMethod] — declaration predicates.
//   - [CollectAwaitExpressions], [CollectYieldStatements] — control-flow
//     markers, respecting lambda-scope boundaries.
//
// Expected absences (no body, no backing field, no accessibility modifier)
// return the zero NodeRef or [Unspecified]. Caller-contract violations —
// mismatched kinds during descent, mismatched shape families, a zero-width
// node passed to the matcher — surface as a [*ConsistencyError]: the
// isomorphic-region invariant was broken upstream and the operation aborts.
//
// All operations are synchronous and side-effect-free; concurrent calls on
// the same snapshot are safe.
//
// # Driver
//
// [Analyze] runs the whole pipeline for one edit: parse both versions,
// align declarations across them, classify each, and report a
// [DeclarationChange] per declaration. The cmd/regraft CLI wraps it, gates
// verdicts through internal/rules, and can log runs via internal/store.
package regraft
