package regraft

import "github.com/jward/regraft/internal/syntax"

// CollectAwaitExpressions returns every await expression within body in
// document order. Nested lambda shapes and local functions suspend on
// their own; their subtrees are skipped, not descended into.
func CollectAwaitExpressions(body NodeRef) []NodeRef {
	var awaits []NodeRef
	body.Walk(func(n NodeRef) bool {
		if n != body {
			if k := n.Kind(); k.IsLambdaShape() || k == syntax.KindLocalFunction {
				return false
			}
		}
		if n.Kind() == syntax.KindAwaitExpression {
			awaits = append(awaits, n)
		}
		return true
	})
	return awaits
}

// CollectYieldStatements returns the yield-return and yield-break
// statements within body in document order. It applies only when body's
// owner is a full method declaration — lambdas and expression-bodied
// members cannot be iterators — and traverses statement-level descendants
// only: a yield cannot occur inside an expression, and a yield inside a
// nested lambda or local function belongs to that nested scope.
func CollectYieldStatements(body NodeRef) []NodeRef {
	if body.Parent().Kind() != syntax.KindMethod {
		return nil
	}
	var yields []NodeRef
	body.Walk(func(n NodeRef) bool {
		switch k := n.Kind(); {
		case k == syntax.KindYieldReturn || k == syntax.KindYieldBreak:
			yields = append(yields, n)
			return false
		case n != body && (k == syntax.KindLocalFunction || k.IsExpressionLike()):
			return false
		}
		return true
	})
	return yields
}
