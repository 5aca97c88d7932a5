//go:build debug

package regraft

import (
	"fmt"

	"github.com/jward/regraft/internal/syntax"
)

// checkBody validates that a located body is one of the shapes the core
// hands out: a block, a lambda or query body, or the expression of an
// arrow clause or initializer. Anything else is an internal inconsistency
// in the locator, not a user-facing condition, so the debug build panics.
func checkBody(body NodeRef) NodeRef {
	if !body.IsValid() {
		return body
	}
	switch k := body.Kind(); {
	case k == syntax.KindBlock:
	case k == syntax.KindToken, k == syntax.KindOther:
		// Literal and composite expressions lower to these generic kinds.
	case k.IsExpressionLike():
	default:
		panic(fmt.Sprintf("regraft: located body has non-body kind %s at %v", k, body.Span()))
	}
	return body
}
