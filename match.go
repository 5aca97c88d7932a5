package regraft

// FindPartner maps oldNode, which lies in oldRoot's tree, to its structural
// counterpart under newRoot. The two trees must be congruent along the
// path to oldNode (the isomorphic-region invariant): the descent locates,
// at each level, the unique old child containing oldNode's start offset and
// takes the new child at the same sibling index, asserting equal kinds.
// Cost is O(tree depth); no whole-tree alignment table is kept.
//
// Zero-width nodes are not supported: their start offset does not identify
// a unique containment path.
func FindPartner(oldRoot, newRoot, oldNode NodeRef) (NodeRef, error) {
	if !oldNode.IsValid() || oldNode.Span().Len == 0 {
		return NodeRef{}, faultf(oldNode, NodeRef{}, "zero-width node passed to partner matching")
	}
	if oldNode.Tree() != oldRoot.Tree() {
		return NodeRef{}, faultf(oldNode, NodeRef{}, "node does not belong to the old tree")
	}
	if oldRoot.Kind() != newRoot.Kind() {
		return NodeRef{}, faultf(oldRoot, newRoot, "root kinds diverge: %s vs %s", oldRoot.Kind(), newRoot.Kind())
	}

	pos := oldNode.Span().Start
	cur0, cur1 := oldRoot, newRoot
	for cur0 != oldNode {
		child0, idx, ok := cur0.ChildContaining(pos)
		if !ok {
			return NodeRef{}, faultf(cur0, cur1, "old node %v is not a descendant of %v", oldNode, oldRoot)
		}
		child1 := cur1.Child(idx)
		if !child1.IsValid() {
			return NodeRef{}, faultf(child0, cur1, "child counts diverge at index %d under %v", idx, cur1)
		}
		if child0.Kind() != child1.Kind() {
			return NodeRef{}, faultf(child0, child1, "kinds diverge during descent: %s vs %s", child0.Kind(), child1.Kind())
		}
		cur0, cur1 = child0, child1
	}
	return cur1, nil
}

// FindLeafNodeAndPartner runs the same lockstep descent driven by an
// absolute text offset instead of a target node, stopping when the old
// side reaches a leaf. It returns that leaf and its new-tree partner, and
// is used to seed matching from an edit's caret position.
func FindLeafNodeAndPartner(oldRoot NodeRef, position int, newRoot NodeRef) (oldLeaf, newLeaf NodeRef, err error) {
	if !oldRoot.IsValid() || !oldRoot.Span().Contains(position) {
		return NodeRef{}, NodeRef{}, faultf(oldRoot, NodeRef{}, "position %d outside tree span %v", position, oldRoot.Span())
	}
	if oldRoot.Kind() != newRoot.Kind() {
		return NodeRef{}, NodeRef{}, faultf(oldRoot, newRoot, "root kinds diverge: %s vs %s", oldRoot.Kind(), newRoot.Kind())
	}

	cur0, cur1 := oldRoot, newRoot
	for cur0.NumChildren() > 0 {
		child0, idx, ok := cur0.ChildContaining(position)
		if !ok {
			// Child spans partition the parent, so this cannot happen on a
			// well-formed tree.
			return NodeRef{}, NodeRef{}, faultf(cur0, cur1, "no child of %v contains offset %d", cur0, position)
		}
		child1 := cur1.Child(idx)
		if !child1.IsValid() {
			return NodeRef{}, NodeRef{}, faultf(child0, cur1, "child counts diverge at index %d under %v", idx, cur1)
		}
		if child0.Kind() != child1.Kind() {
			return NodeRef{}, NodeRef{}, faultf(child0, child1, "kinds diverge during descent: %s vs %s", child0.Kind(), child1.Kind())
		}
		cur0, cur1 = child0, child1
	}
	return cur0, cur1, nil
}
