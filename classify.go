package regraft

import "github.com/jward/regraft/internal/syntax"

// Accessibility is the tri-state result of scanning a declaration's
// modifiers. Default resolution is deliberately left to the caller: the
// correct default depends on the surrounding declaration context, which
// this core does not see.
type Accessibility int

const (
	// Unspecified means no explicit accessibility modifier was present.
	Unspecified Accessibility = iota
	// NonPrivate means public, protected, or internal appeared first.
	NonPrivate
	// Private means private appeared first.
	Private
)

func (a Accessibility) String() string {
	switch a {
	case NonPrivate:
		return "non-private"
	case Private:
		return "private"
	default:
		return "unspecified"
	}
}

// IsMethodLike reports whether the node is a declaration with method
// semantics: a method, conversion operator, operator, accessor,
// constructor, or destructor. Properties and indexers are not method-like;
// their accessors are.
func IsMethodLike(n NodeRef) bool {
	switch n.Kind() {
	case syntax.KindMethod, syntax.KindConversionOperator, syntax.KindOperator,
		syntax.KindGetAccessor, syntax.KindSetAccessor,
		syntax.KindAddAccessor, syntax.KindRemoveAccessor,
		syntax.KindConstructor, syntax.KindDestructor:
		return true
	}
	return false
}

// IsParameterlessConstructor reports whether the node is a constructor
// declaration whose parameter list has zero entries.
func IsParameterlessConstructor(n NodeRef) bool {
	if n.Kind() != syntax.KindConstructor {
		return false
	}
	params := firstChildOfKind(n, syntax.KindParameterList)
	if !params.IsValid() {
		return false
	}
	for i := 0; i < params.NumChildren(); i++ {
		if params.Child(i).Kind() == syntax.KindParameter {
			return false
		}
	}
	return true
}

// Modifiers returns the declaration's modifier tokens in declaration order.
func Modifiers(n NodeRef) []NodeRef {
	var mods []NodeRef
	for i := 0; i < n.NumChildren(); i++ {
		if c := n.Child(i); c.Kind().IsModifier() {
			mods = append(mods, c)
		}
	}
	return mods
}

// AccessibilityFromModifiers scans modifiers in declaration order; the
// first explicit accessibility keyword decides. Absence of any such
// keyword yields Unspecified.
func AccessibilityFromModifiers(modifiers []NodeRef) Accessibility {
	for _, m := range modifiers {
		switch m.Kind() {
		case syntax.KindPublicModifier, syntax.KindProtectedModifier, syntax.KindInternalModifier:
			return NonPrivate
		case syntax.KindPrivateModifier:
			return Private
		}
	}
	return Unspecified
}

// HasBackingField reports whether the property is auto-implemented and
// therefore carries a compiler-generated backing field: not abstract or
// extern, no expression body, and at least one accessor without a body.
func HasBackingField(property NodeRef) bool {
	if property.Kind() != syntax.KindProperty {
		return false
	}
	for _, m := range Modifiers(property) {
		switch m.Kind() {
		case syntax.KindAbstractModifier, syntax.KindExternModifier:
			return false
		}
	}
	if firstChildOfKind(property, syntax.KindExpressionBody).IsValid() {
		return false
	}
	accessors := firstChildOfKind(property, syntax.KindAccessorList)
	if !accessors.IsValid() {
		return false
	}
	for i := 0; i < accessors.NumChildren(); i++ {
		acc := accessors.Child(i)
		if !acc.Kind().IsAccessor() {
			continue
		}
		if !firstChildOfKind(acc, syntax.KindBlock).IsValid() &&
			!firstChildOfKind(acc, syntax.KindExpressionBody).IsValid() {
			return true
		}
	}
	return false
}

// IsAsyncMethodOrLambda reports whether the node is a lambda form carrying
// an async marker, or a declaration (or its expression-body clause) whose
// modifiers include async.
func IsAsyncMethodOrLambda(n NodeRef) bool {
	k := n.Kind()
	switch {
	case k.IsLambdaForm():
		return hasModifier(n, syntax.KindAsyncModifier)
	case k == syntax.KindExpressionBody:
		// An expression body is never async by itself; the owning method is.
		return hasModifier(n.Parent(), syntax.KindAsyncModifier)
	case k.IsDeclaration():
		return hasModifier(n, syntax.KindAsyncModifier)
	}
	return false
}

// IsIteratorMethod reports whether the declaration is a full method with a
// block body containing a yield-return or yield-break at statement level.
// Lambdas and expression-bodied members cannot be iterators, and a yield
// inside a nested lambda or local function belongs to that nested scope,
// so the search never descends into expression subtrees.
func IsIteratorMethod(decl NodeRef) bool {
	if decl.Kind() != syntax.KindMethod {
		return false
	}
	body := firstChildOfKind(decl, syntax.KindBlock)
	if !body.IsValid() {
		return false
	}
	found := false
	body.Walk(func(n NodeRef) bool {
		if found {
			return false
		}
		switch k := n.Kind(); {
		case k == syntax.KindYieldReturn || k == syntax.KindYieldBreak:
			found = true
			return false
		case k == syntax.KindLocalFunction || k.IsExpressionLike():
			return false
		}
		return true
	})
	return found
}

func firstChildOfKind(n NodeRef, kind Kind) NodeRef {
	for i := 0; i < n.NumChildren(); i++ {
		if c := n.Child(i); c.Kind() == kind {
			return c
		}
	}
	return NodeRef{}
}

func hasModifier(n NodeRef, kind Kind) bool {
	if !n.IsValid() {
		return false
	}
	for i := 0; i < n.NumChildren(); i++ {
		if n.Child(i).Kind() == kind {
			return true
		}
	}
	return false
}
