// Package syntax defines the immutable arena-backed syntax tree the
// correlation core operates on. A tree is produced once (see internal/csharp)
// and never mutated; an edit yields an entirely new tree. Nodes are addressed
// by NodeRef, a (tree, arena index) pair, so parent links are plain integer
// indexes and the structure carries no reference cycles.
package syntax

import "fmt"

// Span is a contiguous byte range: absolute start offset plus length.
type Span struct {
	Start int
	Len   int
}

// End returns the exclusive end offset.
func (s Span) End() int { return s.Start + s.Len }

// Contains reports whether the absolute offset lies inside the span.
func (s Span) Contains(off int) bool { return off >= s.Start && off < s.End() }

func (s Span) String() string { return fmt.Sprintf("[%d..%d)", s.Start, s.End()) }

// node is the arena representation. Child spans are ordered and exactly
// partition the parent span: no gaps, no overlaps. The producer enforces
// this during lowering.
type node struct {
	kind     Kind
	span     Span
	parent   int32 // -1 for the root
	children []int32
	token    bool
}

// Tree is an immutable snapshot of one parse. The root is always node 0.
type Tree struct {
	nodes []node
	src   []byte
}

// Root returns the tree's root node.
func (t *Tree) Root() NodeRef { return NodeRef{t: t, idx: 0} }

// Source returns the source bytes the tree was parsed from.
func (t *Tree) Source() []byte { return t.src }

// Len returns the number of nodes in the tree, tokens included.
func (t *Tree) Len() int { return len(t.nodes) }

// NodeRef addresses one node of one tree. The zero NodeRef is invalid and
// stands in for "no node"; every accessor on it returns a zero result.
// NodeRefs are comparable: two refs are equal iff they address the same
// node of the same tree snapshot.
type NodeRef struct {
	t   *Tree
	idx int32
}

// IsValid reports whether the ref addresses a node.
func (n NodeRef) IsValid() bool { return n.t != nil }

// Tree returns the owning tree, or nil for the zero ref.
func (n NodeRef) Tree() *Tree { return n.t }

// Kind returns the node's kind tag, or KindInvalid for the zero ref.
func (n NodeRef) Kind() Kind {
	if n.t == nil {
		return KindInvalid
	}
	return n.t.nodes[n.idx].kind
}

// Span returns the node's byte span.
func (n NodeRef) Span() Span {
	if n.t == nil {
		return Span{}
	}
	return n.t.nodes[n.idx].span
}

// IsToken reports whether the node is a leaf token.
func (n NodeRef) IsToken() bool {
	return n.t != nil && n.t.nodes[n.idx].token
}

// Parent returns the parent node, or the zero ref for the root.
func (n NodeRef) Parent() NodeRef {
	if n.t == nil {
		return NodeRef{}
	}
	p := n.t.nodes[n.idx].parent
	if p < 0 {
		return NodeRef{}
	}
	return NodeRef{t: n.t, idx: p}
}

// NumChildren returns the number of children, tokens included.
func (n NodeRef) NumChildren() int {
	if n.t == nil {
		return 0
	}
	return len(n.t.nodes[n.idx].children)
}

// Child returns the i-th child. Out-of-range indexes yield the zero ref.
func (n NodeRef) Child(i int) NodeRef {
	if n.t == nil {
		return NodeRef{}
	}
	kids := n.t.nodes[n.idx].children
	if i < 0 || i >= len(kids) {
		return NodeRef{}
	}
	return NodeRef{t: n.t, idx: kids[i]}
}

// ChildContaining returns the unique child whose span contains the absolute
// offset, together with its sibling index. Because child spans partition the
// parent span, the lookup is a binary search. Returns ok=false when the
// offset falls outside the node's span or the node is a leaf.
func (n NodeRef) ChildContaining(off int) (child NodeRef, index int, ok bool) {
	if n.t == nil || !n.Span().Contains(off) {
		return NodeRef{}, 0, false
	}
	kids := n.t.nodes[n.idx].children
	lo, hi := 0, len(kids)
	for lo < hi {
		mid := (lo + hi) / 2
		sp := n.t.nodes[kids[mid]].span
		switch {
		case off < sp.Start:
			hi = mid
		case off >= sp.End():
			lo = mid + 1
		default:
			return NodeRef{t: n.t, idx: kids[mid]}, mid, true
		}
	}
	return NodeRef{}, 0, false
}

// Text returns the source text the node spans.
func (n NodeRef) Text() string {
	if n.t == nil {
		return ""
	}
	sp := n.Span()
	return string(n.t.src[sp.Start:sp.End()])
}

// Walk calls fn for the node and every descendant in document order.
// Returning false prunes the subtree below the current node.
func (n NodeRef) Walk(fn func(NodeRef) bool) {
	if n.t == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.t.nodes[n.idx].children {
		(NodeRef{t: n.t, idx: c}).Walk(fn)
	}
}

func (n NodeRef) String() string {
	if n.t == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s%s", n.Kind(), n.Span())
}

// Builder assembles a Tree top-down. The producer adds the root first, then
// children in document order under their parents; Done freezes the arena.
type Builder struct {
	t *Tree
}

// NewBuilder starts a tree over the given source bytes.
func NewBuilder(src []byte) *Builder {
	return &Builder{t: &Tree{src: src}}
}

// Add appends a node under parent (pass the zero ref for the root) and
// returns its ref. Children must be added in left-to-right span order.
func (b *Builder) Add(parent NodeRef, kind Kind, span Span, token bool) NodeRef {
	idx := int32(len(b.t.nodes))
	p := int32(-1)
	if parent.IsValid() {
		p = parent.idx
		b.t.nodes[p].children = append(b.t.nodes[p].children, idx)
	}
	b.t.nodes = append(b.t.nodes, node{kind: kind, span: span, parent: p, token: token})
	return NodeRef{t: b.t, idx: idx}
}

// SetSpan adjusts a node's span before Done. The producer uses this to
// normalize child spans into an exact partition of the parent.
func (b *Builder) SetSpan(n NodeRef, span Span) {
	b.t.nodes[n.idx].span = span
}

// Done returns the finished tree. The builder must not be reused.
func (b *Builder) Done() *Tree {
	t := b.t
	b.t = nil
	return t
}
