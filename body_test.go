package regraft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/regraft/internal/syntax"
)

func TestBody_MethodBlock(t *testing.T) {
	tree := parseSrc(t, `class C { void M() { int x = 1; } }`)
	body := Body(findKind(t, tree, syntax.KindMethod))
	require.True(t, body.IsValid())
	assert.Equal(t, syntax.KindBlock, body.Kind())
	assert.Contains(t, body.Text(), "int x = 1;")
}

func TestBody_MethodExpressionBody(t *testing.T) {
	tree := parseSrc(t, `class C { int M() => 41 + 1; }`)
	body := Body(findKind(t, tree, syntax.KindMethod))
	require.True(t, body.IsValid())
	assert.NotEqual(t, syntax.KindExpressionBody, body.Kind(),
		"the body is the expression, not the arrow clause")
	assert.Contains(t, body.Text(), "41 + 1")
}

func TestBody_MethodWithoutBody(t *testing.T) {
	tree := parseSrc(t, `abstract class C { public abstract void M(); }`)
	assert.False(t, Body(findKind(t, tree, syntax.KindMethod)).IsValid())
}

func TestBody_OperatorAndConversion(t *testing.T) {
	tree := parseSrc(t, `
class C {
    public static C operator +(C a, C b) { return a; }
    public static explicit operator int(C a) => 0;
}`)
	op := Body(findKind(t, tree, syntax.KindOperator))
	require.True(t, op.IsValid())
	assert.Equal(t, syntax.KindBlock, op.Kind())

	conv := Body(findKind(t, tree, syntax.KindConversionOperator))
	require.True(t, conv.IsValid())
	assert.Contains(t, conv.Text(), "0")
}

func TestBody_Accessors(t *testing.T) {
	tree := parseSrc(t, `
class C {
    int p;
    public int P {
        get { return p; }
        set { p = value; }
    }
    public int Q { get; set; }
}`)
	accessors := findAllKinds(tree, syntax.KindGetAccessor, syntax.KindSetAccessor)
	require.Len(t, accessors, 4)

	// P's accessors have blocks; Q's auto accessors have none.
	assert.Equal(t, syntax.KindBlock, Body(accessors[0]).Kind())
	assert.Equal(t, syntax.KindBlock, Body(accessors[1]).Kind())
	assert.False(t, Body(accessors[2]).IsValid())
	assert.False(t, Body(accessors[3]).IsValid())
}

func TestBody_ConstructorAndDestructor(t *testing.T) {
	tree := parseSrc(t, `class C { C() { } ~C() { } }`)
	assert.Equal(t, syntax.KindBlock, Body(findKind(t, tree, syntax.KindConstructor)).Kind())
	assert.Equal(t, syntax.KindBlock, Body(findKind(t, tree, syntax.KindDestructor)).Kind())
}

func TestBody_PropertyInitializerWins(t *testing.T) {
	tree := parseSrc(t, `class C { public int P { get; set; } = 42; }`)
	body := Body(findKind(t, tree, syntax.KindProperty))
	require.True(t, body.IsValid())
	assert.Equal(t, "42", strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(body.Text()), ";")))
}

func TestBody_PropertyExpressionBody(t *testing.T) {
	tree := parseSrc(t, `class C { int p; public int P => p * 2; }`)
	body := Body(findKind(t, tree, syntax.KindProperty))
	require.True(t, body.IsValid())
	assert.Contains(t, body.Text(), "p * 2")
}

func TestBody_PropertyFallsBackToGetterBlock(t *testing.T) {
	tree := parseSrc(t, `
class C {
    int p;
    public int P {
        get { return p; }
        set { p = value; }
    }
}`)
	body := Body(findKind(t, tree, syntax.KindProperty))
	require.True(t, body.IsValid())
	assert.Equal(t, syntax.KindBlock, body.Kind())
	assert.Contains(t, body.Text(), "return p;")
}

func TestBody_AutoPropertyHasNone(t *testing.T) {
	tree := parseSrc(t, `class C { public int P { get; set; } }`)
	assert.False(t, Body(findKind(t, tree, syntax.KindProperty)).IsValid())
}

func TestBody_IndexerExpressionBodyOnly(t *testing.T) {
	tree := parseSrc(t, `class C { int this[int i] => i * 3; }`)
	body := Body(findKind(t, tree, syntax.KindIndexer))
	require.True(t, body.IsValid())
	assert.Contains(t, body.Text(), "i * 3")

	tree = parseSrc(t, `class C { int this[int i] { get { return i; } } }`)
	assert.False(t, Body(findKind(t, tree, syntax.KindIndexer)).IsValid(),
		"an indexer with accessors exposes bodies through them")
}

func TestBody_NonDeclaration(t *testing.T) {
	tree := parseSrc(t, `class C { void M() { } }`)
	assert.False(t, Body(findKind(t, tree, syntax.KindBlock)).IsValid())
	assert.False(t, Body(NodeRef{}).IsValid())
}

func TestEffectiveGetterBody(t *testing.T) {
	tree := parseSrc(t, `
class C {
    int p;
    public int P {
        set { p = value; }
        get { return p; }
    }
}`)
	prop := findKind(t, tree, syntax.KindProperty)
	accessorList := findKind(t, tree, syntax.KindAccessorList)

	// No expression body: first get accessor with a block wins, even when a
	// setter precedes it in declaration order.
	body := EffectiveGetterBody(NodeRef{}, accessorList)
	require.True(t, body.IsValid())
	assert.Equal(t, syntax.KindBlock, body.Kind())
	assert.Contains(t, body.Text(), "return p;")
	_ = prop

	// An expression body takes precedence over the accessor list.
	tree2 := parseSrc(t, `class C { int p; public int P => p; }`)
	exprBody := findKind(t, tree2, syntax.KindExpressionBody)
	got := EffectiveGetterBody(exprBody, NodeRef{})
	require.True(t, got.IsValid())
	assert.Contains(t, got.Text(), "p")

	// Neither present: no body.
	assert.False(t, EffectiveGetterBody(NodeRef{}, NodeRef{}).IsValid())
}
