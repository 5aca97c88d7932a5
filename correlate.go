package regraft

import "github.com/jward/regraft/internal/syntax"

// PartnerBody maps an old lambda-or-query-clause body to the corresponding
// body owned by newShape, an already-matched lambda shape in the new tree.
// The shape family of oldBody's parent drives the dispatch; a mismatched
// family means the caller matched unrelated nodes, which is a consistency
// fault, not a recoverable condition.
func PartnerBody(oldBody, newShape NodeRef) (NodeRef, error) {
	oldShape := oldBody.Parent()
	if !oldShape.IsValid() {
		return NodeRef{}, faultf(oldBody, newShape, "old body has no enclosing lambda shape")
	}

	switch k := oldShape.Kind(); k {
	case syntax.KindParenthesizedLambda, syntax.KindSimpleLambda, syntax.KindAnonymousMethod:
		if !newShape.Kind().IsLambdaForm() {
			return NodeRef{}, faultf(oldShape, newShape, "lambda matched against %s", newShape.Kind())
		}
		return lambdaBody(newShape), nil

	case syntax.KindFromClause, syntax.KindLetClause, syntax.KindWhereClause, syntax.KindSelectClause:
		if newShape.Kind() != k {
			return NodeRef{}, faultf(oldShape, newShape, "%s matched against %s", k, newShape.Kind())
		}
		return ownedExpression(newShape), nil

	case syntax.KindOrderAscending, syntax.KindOrderDescending:
		// The sort direction may change without changing the body's identity.
		if nk := newShape.Kind(); nk != syntax.KindOrderAscending && nk != syntax.KindOrderDescending {
			return NodeRef{}, faultf(oldShape, newShape, "ordering matched against %s", nk)
		}
		return ownedExpression(newShape), nil

	case syntax.KindJoinClause:
		if newShape.Kind() != syntax.KindJoinClause {
			return NodeRef{}, faultf(oldShape, newShape, "join clause matched against %s", newShape.Kind())
		}
		oldLeft, oldRight := joinSides(oldShape)
		newLeft, newRight := joinSides(newShape)
		switch oldBody {
		case oldLeft:
			return newLeft, nil
		case oldRight:
			return newRight, nil
		}
		return NodeRef{}, faultf(oldBody, oldShape, "body is neither side of the old join clause")

	case syntax.KindGroupClause:
		if newShape.Kind() != syntax.KindGroupClause {
			return NodeRef{}, faultf(oldShape, newShape, "group clause matched against %s", newShape.Kind())
		}
		oldGroup, oldBy := groupSides(oldShape)
		newGroup, newBy := groupSides(newShape)
		switch oldBody {
		case oldGroup:
			return newGroup, nil
		case oldBy:
			return newBy, nil
		}
		return NodeRef{}, faultf(oldBody, oldShape, "body is neither expression of the old group clause")
	}

	return NodeRef{}, faultf(oldBody, newShape, "node of kind %s is not a lambda body", oldShape.Kind())
}

// lambdaBody returns the body a lambda form owns: the block of an
// anonymous method, the block or expression of the other two forms.
func lambdaBody(shape NodeRef) NodeRef {
	if b := firstChildOfKind(shape, syntax.KindBlock); b.IsValid() {
		return b
	}
	return ownedExpression(shape)
}

// joinSides returns the two expressions a join clause owns: the left side
// (after "on") and the right side (after "equals").
func joinSides(join NodeRef) (left, right NodeRef) {
	return childAfterKeyword(join, "on"), childAfterKeyword(join, "equals")
}

// groupSides returns the grouped expression (after "group") and the key
// expression (after "by").
func groupSides(group NodeRef) (grouped, by NodeRef) {
	return childAfterKeyword(group, "group"), childAfterKeyword(group, "by")
}

func childAfterKeyword(n NodeRef, word string) NodeRef {
	for i := 0; i < n.NumChildren()-1; i++ {
		c := n.Child(i)
		if c.Kind() == syntax.KindKeyword && keywordText(c) == word {
			return n.Child(i + 1)
		}
	}
	return NodeRef{}
}

// keywordText strips the trailing trivia a normalized token span absorbs,
// leaving the keyword itself.
func keywordText(tok NodeRef) string {
	t := tok.Text()
	for i := 0; i < len(t); i++ {
		if t[i] < 'a' || t[i] > 'z' {
			return t[:i]
		}
	}
	return t
}
