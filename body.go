package regraft

import "github.com/jward/regraft/internal/syntax"

// Body returns the single executable-body node of a declaration: the node
// whose contents are subject to cross-version matching. Declarations with
// no executable region (an abstract method, an auto-property accessor)
// yield the zero NodeRef.
//
// Dispatch by kind:
//
//	method / conversion operator / operator  block, else expression body
//	accessor                                 block, or none
//	constructor / destructor                 block, or none
//	property                                 initializer, else expression
//	                                         body, else effective getter body
//	indexer                                  expression body, or none
func Body(decl NodeRef) NodeRef {
	switch decl.Kind() {
	case syntax.KindMethod, syntax.KindConversionOperator, syntax.KindOperator:
		if b := firstChildOfKind(decl, syntax.KindBlock); b.IsValid() {
			return checkBody(b)
		}
		return checkBody(expressionBodyExpr(decl))

	case syntax.KindGetAccessor, syntax.KindSetAccessor,
		syntax.KindAddAccessor, syntax.KindRemoveAccessor,
		syntax.KindConstructor, syntax.KindDestructor:
		return checkBody(firstChildOfKind(decl, syntax.KindBlock))

	case syntax.KindProperty:
		if init := firstChildOfKind(decl, syntax.KindInitializer); init.IsValid() {
			return checkBody(ownedExpression(init))
		}
		if e := expressionBodyExpr(decl); e.IsValid() {
			return checkBody(e)
		}
		exprBody := firstChildOfKind(decl, syntax.KindExpressionBody)
		return checkBody(EffectiveGetterBody(exprBody, firstChildOfKind(decl, syntax.KindAccessorList)))

	case syntax.KindIndexer:
		return checkBody(expressionBodyExpr(decl))
	}
	return NodeRef{}
}

// EffectiveGetterBody resolves the body a property's getter contributes:
// the expression of the expression body when present, otherwise the block
// of the first get accessor (in declaration order) that has one.
func EffectiveGetterBody(expressionBody, accessorList NodeRef) NodeRef {
	if expressionBody.IsValid() {
		return ownedExpression(expressionBody)
	}
	if !accessorList.IsValid() {
		return NodeRef{}
	}
	for i := 0; i < accessorList.NumChildren(); i++ {
		acc := accessorList.Child(i)
		if acc.Kind() != syntax.KindGetAccessor {
			continue
		}
		if b := firstChildOfKind(acc, syntax.KindBlock); b.IsValid() {
			return b
		}
	}
	return NodeRef{}
}

// expressionBodyExpr returns the expression of the declaration's arrow
// clause, or the zero ref when the declaration has no expression body.
func expressionBodyExpr(decl NodeRef) NodeRef {
	return ownedExpression(firstChildOfKind(decl, syntax.KindExpressionBody))
}

// ownedExpression returns the last child of n that is not punctuation or a
// keyword — the single expression a clause owns (after its introducing
// token). Works for arrow clauses, initializers, and single-expression
// query clauses alike.
func ownedExpression(n NodeRef) NodeRef {
	if !n.IsValid() {
		return NodeRef{}
	}
	for i := n.NumChildren() - 1; i >= 0; i-- {
		c := n.Child(i)
		switch c.Kind() {
		case syntax.KindKeyword:
		case syntax.KindToken:
			// Punctuation is skipped, but a literal expression also lowers
			// to a bare token; only skip it when it is pure punctuation.
			if isWordOrLiteral(c) {
				return c
			}
		default:
			return c
		}
	}
	return NodeRef{}
}

// isWordOrLiteral distinguishes a literal-expression token from clause
// punctuation like "=>", "=", or ";".
func isWordOrLiteral(tok NodeRef) bool {
	t := tok.Text()
	if len(t) == 0 {
		return false
	}
	switch c := t[0]; {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z',
		c == '"', c == '\'', c == '@', c == '$', c == '_':
		return true
	}
	return false
}
