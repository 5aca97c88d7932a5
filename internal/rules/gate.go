// Package rules evaluates a Risor policy script against declaration
// changes, producing a patch-legality verdict per declaration. Which edits
// a session tolerates is policy, not correlation, so it lives in a script
// the operator can replace.
package rules

import (
	"context"
	"fmt"
	"os"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/object"

	"github.com/jward/regraft"
)

// Verdict is the gate's decision for one declaration change.
type Verdict struct {
	Allowed bool
	Reason  string
}

// Gate holds one policy script. A Gate is immutable and safe for
// concurrent Evaluate calls.
type Gate struct {
	source string
	label  string
}

// New wraps Risor source as a Gate. The label appears in error messages.
func New(source, label string) *Gate {
	return &Gate{source: source, label: label}
}

// Load reads a policy script from disk.
func Load(path string) (*Gate, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: loading policy %s: %w", path, err)
	}
	return New(string(src), path), nil
}

// Evaluate runs the policy against one change. The script sees a "change"
// global map and must evaluate to a bool or to a map with "allow" and
// "reason" keys.
func (g *Gate) Evaluate(ctx context.Context, c regraft.DeclarationChange) (Verdict, error) {
	result, err := risor.Eval(ctx, g.source, risor.WithGlobal("change", changeGlobals(c)))
	if err != nil {
		return Verdict{}, fmt.Errorf("rules: policy %s: %w", g.label, err)
	}

	switch v := result.(type) {
	case *object.Bool:
		return Verdict{Allowed: v.Value()}, nil
	case *object.Map:
		m := v.Value()
		verdict := Verdict{}
		if b, ok := m["allow"].(*object.Bool); ok {
			verdict.Allowed = b.Value()
		}
		if s, ok := m["reason"].(*object.String); ok {
			verdict.Reason = s.Value()
		}
		return verdict, nil
	}
	return Verdict{}, fmt.Errorf("rules: policy %s evaluated to %s, want bool or map", g.label, result.Type())
}

func changeGlobals(c regraft.DeclarationChange) map[string]any {
	return map[string]any{
		"name":              c.Name,
		"kind":              c.Kind,
		"method_like":       c.MethodLike,
		"parameterless":     c.Parameterless,
		"backing_field":     c.BackingField,
		"old_accessibility": c.OldAccessibility.String(),
		"new_accessibility": c.NewAccessibility.String(),
		"old_async":         c.OldAsync,
		"new_async":         c.NewAsync,
		"old_iterator":      c.OldIterator,
		"new_iterator":      c.NewIterator,
		"old_await_count":   int64(c.OldAwaitCount),
		"new_await_count":   int64(c.NewAwaitCount),
		"old_yield_count":   int64(c.OldYieldCount),
		"new_yield_count":   int64(c.NewYieldCount),
		"has_body":          c.HasBody,
		"body_changed":      c.BodyChanged,
		"structural":        c.Structural,
	}
}
