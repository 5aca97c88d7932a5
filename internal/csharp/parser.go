// Package csharp lowers tree-sitter C# parses into the syntax.Tree arena
// the correlation core consumes. Lowering maps grammar node types onto the
// closed kind set and normalizes child spans into an exact partition of
// each parent span: the gap before a child (whitespace, comments) attaches
// to the preceding sibling, the way trailing trivia attaches to a token.
package csharp

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/jward/regraft/internal/syntax"
)

// Parse parses C# source and lowers it into an immutable syntax.Tree.
// The resulting root always spans the whole source.
func Parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())

	tsTree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("csharp: parse: %w", err)
	}
	root := tsTree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("csharp: parse produced no tree")
	}

	b := syntax.NewBuilder(src)
	rootRef := b.Add(syntax.NodeRef{}, syntax.KindOther, syntax.Span{Start: 0, Len: len(src)}, false)

	l := &lowerer{b: b, src: src}
	for i := 0; i < int(root.ChildCount()); i++ {
		l.lower(root.Child(i), rootRef)
	}

	normalizeSpans(b, rootRef)
	return b.Done(), nil
}

type lowerer struct {
	b   *syntax.Builder
	src []byte
}

func (l *lowerer) text(n *sitter.Node) string {
	return n.Content(l.src)
}

func tsSpan(n *sitter.Node) syntax.Span {
	start := int(n.StartByte())
	return syntax.Span{Start: start, Len: int(n.EndByte()) - start}
}

// lower adds the node and its subtree under parent. Zero-width nodes
// (tree-sitter MISSING placeholders) are dropped: the core rejects them
// and they would break the span partition.
func (l *lowerer) lower(n *sitter.Node, parent syntax.NodeRef) {
	if n.StartByte() == n.EndByte() {
		return
	}

	switch n.Type() {
	case "modifier":
		// Collapse the wrapper: a modifier is a single keyword token.
		l.b.Add(parent, modifierKind(l.text(n)), tsSpan(n), true)
		return
	case "order_by_clause":
		l.lowerOrderBy(n, parent)
		return
	case "property_declaration":
		l.lowerProperty(n, parent)
		return
	}

	ref := l.b.Add(parent, l.kindOf(n), tsSpan(n), n.ChildCount() == 0)
	for i := 0; i < int(n.ChildCount()); i++ {
		l.lower(n.Child(i), ref)
	}
}

// lowerOrderBy synthesizes one ordering node per sort key, since the
// grammar inlines orderings directly into the clause. Each ordering owns
// the key expression and, when present, its direction keyword; the kind
// records the direction.
func (l *lowerer) lowerOrderBy(n *sitter.Node, parent syntax.NodeRef) {
	clause := l.b.Add(parent, syntax.KindOther, tsSpan(n), false)

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		c := n.Child(i)
		if c.StartByte() == c.EndByte() {
			continue
		}
		typ := c.Type()
		if !c.IsNamed() {
			// orderby keyword, commas, direction keywords consumed below.
			if typ == "ascending" || typ == "descending" {
				continue
			}
			l.lower(c, clause)
			continue
		}

		kind := syntax.KindOrderAscending
		end := int(c.EndByte())
		if i+1 < count {
			next := n.Child(i + 1)
			if next.Type() == "descending" {
				kind = syntax.KindOrderDescending
				end = int(next.EndByte())
			} else if next.Type() == "ascending" {
				end = int(next.EndByte())
			}
		}
		start := int(c.StartByte())
		ordering := l.b.Add(clause, kind, syntax.Span{Start: start, Len: end - start}, false)
		l.lower(c, ordering)
		if i+1 < count {
			if next := n.Child(i + 1); next.Type() == "ascending" || next.Type() == "descending" {
				l.b.Add(ordering, syntax.KindKeyword, tsSpan(next), true)
			}
		}
	}
}

// lowerProperty wraps a trailing "= value ;" in a synthetic initializer
// node when the grammar inlines it after the accessor list, so a property
// initializer carries the same shape whether it comes wrapped in an
// equals_value_clause or bare.
func (l *lowerer) lowerProperty(n *sitter.Node, parent syntax.NodeRef) {
	ref := l.b.Add(parent, syntax.KindProperty, tsSpan(n), false)

	count := int(n.ChildCount())
	eq := -1
	seenAccessors := false
	for i := 0; i < count; i++ {
		c := n.Child(i)
		if c.Type() == "accessor_list" {
			seenAccessors = true
		}
		if seenAccessors && !c.IsNamed() && c.Type() == "=" {
			eq = i
			break
		}
	}

	for i := 0; i < count; i++ {
		c := n.Child(i)
		if i == eq {
			start := int(c.StartByte())
			end := int(n.Child(count - 1).EndByte())
			init := l.b.Add(ref, syntax.KindInitializer, syntax.Span{Start: start, Len: end - start}, false)
			for j := eq; j < count; j++ {
				l.lower(n.Child(j), init)
			}
			return
		}
		l.lower(c, ref)
	}
}

func (l *lowerer) kindOf(n *sitter.Node) syntax.Kind {
	typ := n.Type()
	if k, ok := grammarKinds[typ]; ok {
		return k
	}

	switch typ {
	case "accessor_declaration":
		for i := 0; i < int(n.ChildCount()); i++ {
			if k, ok := accessorKinds[n.Child(i).Type()]; ok {
				return k
			}
		}
		return syntax.KindOther
	case "lambda_expression":
		if hasChildOfType(n, "parameter_list") {
			return syntax.KindParenthesizedLambda
		}
		return syntax.KindSimpleLambda
	case "yield_statement":
		if hasChildOfType(n, "break") {
			return syntax.KindYieldBreak
		}
		return syntax.KindYieldReturn
	}

	if n.ChildCount() == 0 {
		if !n.IsNamed() {
			if k, ok := modifierKinds[typ]; ok {
				return k
			}
			if isWordToken(typ) {
				return syntax.KindKeyword
			}
		}
		return syntax.KindToken
	}
	if strings.HasSuffix(typ, "_expression") {
		return syntax.KindExpression
	}
	if strings.HasSuffix(typ, "_statement") {
		return syntax.KindStatement
	}
	return syntax.KindOther
}

func isWordToken(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && r != '_' {
			return false
		}
	}
	return len(s) > 0
}

// normalizeSpans stretches each child span so the children exactly
// partition the parent: child i runs from the previous child's end to the
// next child's original start, and the last child absorbs the trailing gap.
func normalizeSpans(b *syntax.Builder, n syntax.NodeRef) {
	count := n.NumChildren()
	if count == 0 {
		return
	}
	sp := n.Span()
	starts := make([]int, count)
	for i := 0; i < count; i++ {
		starts[i] = n.Child(i).Span().Start
	}
	cursor := sp.Start
	for i := 0; i < count; i++ {
		end := sp.End()
		if i+1 < count {
			end = starts[i+1]
		}
		child := n.Child(i)
		b.SetSpan(child, syntax.Span{Start: cursor, Len: end - cursor})
		cursor = end
		normalizeSpans(b, child)
	}
}
