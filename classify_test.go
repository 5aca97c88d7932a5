package regraft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/regraft/internal/syntax"
)

func TestIsMethodLike(t *testing.T) {
	tree := parseSrc(t, `
class C {
    C() { }
    ~C() { }
    void M() { }
    public static C operator +(C a, C b) { return a; }
    public static explicit operator int(C a) { return 0; }
    int P { get; set; }
    int this[int i] => i;
}`)

	methodLike := []Kind{
		syntax.KindMethod, syntax.KindConstructor, syntax.KindDestructor,
		syntax.KindOperator, syntax.KindConversionOperator,
		syntax.KindGetAccessor, syntax.KindSetAccessor,
	}
	for _, k := range methodLike {
		assert.True(t, IsMethodLike(findKind(t, tree, k)), "%s should be method-like", k)
	}
	assert.False(t, IsMethodLike(findKind(t, tree, syntax.KindProperty)))
	assert.False(t, IsMethodLike(findKind(t, tree, syntax.KindIndexer)))
	assert.False(t, IsMethodLike(NodeRef{}))
}

func TestIsParameterlessConstructor(t *testing.T) {
	tree := parseSrc(t, `
class C {
    C() { }
}
class D {
    D(int x) { }
}`)
	ctors := findAllKinds(tree, syntax.KindConstructor)
	require.Len(t, ctors, 2)
	assert.True(t, IsParameterlessConstructor(ctors[0]))
	assert.False(t, IsParameterlessConstructor(ctors[1]))
	assert.False(t, IsParameterlessConstructor(NodeRef{}))
}

func TestHasBackingField(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{
			name: "auto property both accessors bodyless",
			src:  `class C { public int P { get; set; } }`,
			want: true,
		},
		{
			name: "both accessors have block bodies",
			src:  `class C { int p; public int P { get { return p; } set { p = value; } } }`,
			want: false,
		},
		{
			name: "expression bodied property",
			src:  `class C { int p; public int P => p; }`,
			want: false,
		},
		{
			name: "abstract property",
			src:  `abstract class C { public abstract int P { get; set; } }`,
			want: false,
		},
		{
			name: "extern property",
			src:  `class C { public extern int P { get; set; } }`,
			want: false,
		},
		{
			name: "getter only auto property",
			src:  `class C { public int P { get; } }`,
			want: true,
		},
		{
			name: "mixed accessors one bodyless",
			src:  `class C { int p; public int P { get => p; set; } }`,
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseSrc(t, tt.src)
			prop := findKind(t, tree, syntax.KindProperty)
			assert.Equal(t, tt.want, HasBackingField(prop))
		})
	}
}

func TestAccessibilityFromModifiers(t *testing.T) {
	tests := []struct {
		src  string
		want Accessibility
	}{
		{`class C { public void M() { } }`, NonPrivate},
		{`class C { protected void M() { } }`, NonPrivate},
		{`class C { internal void M() { } }`, NonPrivate},
		{`class C { protected internal void M() { } }`, NonPrivate},
		{`class C { private void M() { } }`, Private},
		{`class C { static void M() { } }`, Unspecified},
		{`class C { void M() { } }`, Unspecified},
	}
	for _, tt := range tests {
		tree := parseSrc(t, tt.src)
		m := findKind(t, tree, syntax.KindMethod)
		assert.Equal(t, tt.want, AccessibilityFromModifiers(Modifiers(m)), tt.src)
	}
}

func TestAccessibility_FirstKeywordDecides(t *testing.T) {
	// "private protected" scans private first.
	tree := parseSrc(t, `class C { private protected void M() { } }`)
	m := findKind(t, tree, syntax.KindMethod)
	assert.Equal(t, Private, AccessibilityFromModifiers(Modifiers(m)))
}

func TestAccessibility_String(t *testing.T) {
	assert.Equal(t, "unspecified", Unspecified.String())
	assert.Equal(t, "non-private", NonPrivate.String())
	assert.Equal(t, "private", Private.String())
}

func TestIsAsyncMethodOrLambda(t *testing.T) {
	tree := parseSrc(t, `
class C {
    async System.Threading.Tasks.Task M() { await System.Threading.Tasks.Task.Yield(); }
    void N() { }
    void O() {
        System.Func<System.Threading.Tasks.Task> f = async () => { await System.Threading.Tasks.Task.Yield(); };
        System.Func<int, int> g = x => x;
    }
}`)

	assert.True(t, IsAsyncMethodOrLambda(methodNamed(t, tree, "M")))
	assert.False(t, IsAsyncMethodOrLambda(methodNamed(t, tree, "N")))
	assert.True(t, IsAsyncMethodOrLambda(findKind(t, tree, syntax.KindParenthesizedLambda)))
	assert.False(t, IsAsyncMethodOrLambda(findKind(t, tree, syntax.KindSimpleLambda)))
}

func TestIsAsyncMethodOrLambda_ExpressionBodyResolvesToOwner(t *testing.T) {
	tree := parseSrc(t, `
class C {
    async System.Threading.Tasks.Task M() => await System.Threading.Tasks.Task.Yield();
    int N() => 1;
}`)
	bodies := findAllKinds(tree, syntax.KindExpressionBody)
	require.Len(t, bodies, 2)
	assert.True(t, IsAsyncMethodOrLambda(bodies[0]))
	assert.False(t, IsAsyncMethodOrLambda(bodies[1]))
}

func TestIsIteratorMethod(t *testing.T) {
	tree := parseSrc(t, `
class C {
    System.Collections.Generic.IEnumerable<int> Direct() {
        yield return 1;
    }
    System.Collections.Generic.IEnumerable<int> ViaBreak() {
        yield break;
    }
    System.Collections.Generic.IEnumerable<int> Nested() {
        if (true) {
            for (var i = 0; i < 3; i++) {
                yield return i;
            }
        }
        yield break;
    }
    void Plain() { }
    int ExprBody() => 1;
}`)
	assert.True(t, IsIteratorMethod(methodNamed(t, tree, "Direct")))
	assert.True(t, IsIteratorMethod(methodNamed(t, tree, "ViaBreak")))
	assert.True(t, IsIteratorMethod(methodNamed(t, tree, "Nested")))
	assert.False(t, IsIteratorMethod(methodNamed(t, tree, "Plain")))
	assert.False(t, IsIteratorMethod(methodNamed(t, tree, "ExprBody")),
		"expression-bodied members cannot be iterators")
}

// A yield inside a nested local function or lambda belongs to that nested
// scope: it must not mark the outer method as an iterator.
func TestIsIteratorMethod_NestedScopesExcluded(t *testing.T) {
	tree := parseSrc(t, `
class C {
    void Outer() {
        System.Collections.Generic.IEnumerable<int> Inner() {
            yield return 1;
        }
        Inner();
    }
}`)
	assert.False(t, IsIteratorMethod(methodNamed(t, tree, "Outer")))
}

func TestIsIteratorMethod_NotApplicableToOtherDeclarations(t *testing.T) {
	tree := parseSrc(t, `class C { C() { } int P { get { return 1; } } }`)
	assert.False(t, IsIteratorMethod(findKind(t, tree, syntax.KindConstructor)))
	assert.False(t, IsIteratorMethod(findKind(t, tree, syntax.KindGetAccessor)))
}
