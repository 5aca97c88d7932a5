package regraft

import (
	"context"
	"fmt"

	"github.com/jward/regraft/internal/csharp"
	"github.com/jward/regraft/internal/syntax"
)

// DeclarationChange reports how one declaration fared across an edit:
// its classification in both versions plus whether the executable body
// text changed.
type DeclarationChange struct {
	Name    string
	Kind    string
	OldSpan Span
	NewSpan Span

	MethodLike       bool
	Parameterless    bool
	BackingField     bool
	OldAccessibility Accessibility
	NewAccessibility Accessibility
	OldAsync         bool
	NewAsync         bool
	OldIterator      bool
	NewIterator      bool
	OldAwaitCount    int
	NewAwaitCount    int
	OldYieldCount    int
	NewYieldCount    int

	HasBody     bool
	BodyChanged bool

	// Structural is set when the declaration could not be aligned across
	// versions: partner matching hit a consistency fault, meaning the edit
	// changed structure on the path to this declaration. Such a change is
	// never patchable in place. Fault carries the diagnostic.
	Structural bool
	Fault      string
}

// Analysis is the outcome of correlating one old/new source pair.
type Analysis struct {
	OldTree *Tree
	NewTree *Tree
	Changes []DeclarationChange
}

// Analyze parses both versions of a source file, aligns every declaration
// in the old tree with its counterpart in the new tree, and classifies
// each side. Declarations the matcher cannot align are reported with
// Structural set rather than failing the whole analysis.
func Analyze(ctx context.Context, oldSrc, newSrc []byte) (*Analysis, error) {
	oldTree, err := csharp.Parse(ctx, oldSrc)
	if err != nil {
		return nil, fmt.Errorf("regraft: parse old version: %w", err)
	}
	newTree, err := csharp.Parse(ctx, newSrc)
	if err != nil {
		return nil, fmt.Errorf("regraft: parse new version: %w", err)
	}

	a := &Analysis{OldTree: oldTree, NewTree: newTree}
	for _, decl := range Declarations(oldTree.Root()) {
		a.Changes = append(a.Changes, describeChange(oldTree, newTree, decl))
	}
	return a, nil
}

// Declarations returns every declaration node under root in document
// order. Nested declarations (a property's accessors) are included.
func Declarations(root NodeRef) []NodeRef {
	var decls []NodeRef
	root.Walk(func(n NodeRef) bool {
		if n.Kind().IsDeclaration() {
			decls = append(decls, n)
		}
		return true
	})
	return decls
}

func describeChange(oldTree, newTree *Tree, decl NodeRef) DeclarationChange {
	c := DeclarationChange{
		Name:             declName(decl),
		Kind:             decl.Kind().String(),
		OldSpan:          decl.Span(),
		MethodLike:       IsMethodLike(decl),
		Parameterless:    IsParameterlessConstructor(decl),
		BackingField:     HasBackingField(decl),
		OldAccessibility: AccessibilityFromModifiers(Modifiers(decl)),
		OldAsync:         IsAsyncMethodOrLambda(decl),
		OldIterator:      IsIteratorMethod(decl),
	}

	oldBody := Body(decl)
	if oldBody.IsValid() {
		c.HasBody = true
		c.OldAwaitCount = len(CollectAwaitExpressions(oldBody))
		c.OldYieldCount = len(CollectYieldStatements(oldBody))
	}

	partner, err := FindPartner(oldTree.Root(), newTree.Root(), decl)
	if err != nil {
		c.Structural = true
		c.Fault = err.Error()
		return c
	}

	c.NewSpan = partner.Span()
	c.NewAccessibility = AccessibilityFromModifiers(Modifiers(partner))
	c.NewAsync = IsAsyncMethodOrLambda(partner)
	c.NewIterator = IsIteratorMethod(partner)

	newBody := Body(partner)
	if newBody.IsValid() {
		c.NewAwaitCount = len(CollectAwaitExpressions(newBody))
		c.NewYieldCount = len(CollectYieldStatements(newBody))
	}
	switch {
	case oldBody.IsValid() != newBody.IsValid():
		c.BodyChanged = true
	case oldBody.IsValid():
		c.BodyChanged = oldBody.Text() != newBody.Text()
	}
	return c
}

// declName extracts the declared identifier, falling back to the kind name
// for members without one (conversion operators, for instance). The name
// is the last identifier before the parameter list or body: an earlier
// identifier is the member's type.
func declName(decl NodeRef) string {
	var id NodeRef
scan:
	for i := 0; i < decl.NumChildren(); i++ {
		c := decl.Child(i)
		switch c.Kind() {
		case syntax.KindIdentifier:
			id = c
		case syntax.KindParameterList, syntax.KindAccessorList,
			syntax.KindExpressionBody, syntax.KindBlock, syntax.KindInitializer:
			break scan
		}
	}
	if !id.IsValid() {
		return decl.Kind().String()
	}
	t := id.Text()
	for i := 0; i < len(t); i++ {
		c := t[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_') {
			return t[:i]
		}
	}
	return t
}
