package regraft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jward/regraft/internal/csharp"
	"github.com/jward/regraft/internal/syntax"
)

func parseSrc(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := csharp.Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	return tree
}

func findKind(t *testing.T, tree *Tree, kind Kind) NodeRef {
	t.Helper()
	var found NodeRef
	tree.Root().Walk(func(n NodeRef) bool {
		if found.IsValid() {
			return false
		}
		if n.Kind() == kind {
			found = n
			return false
		}
		return true
	})
	require.True(t, found.IsValid(), "no %s node in tree", kind)
	return found
}

func findAllKinds(tree *Tree, kinds ...Kind) []NodeRef {
	var found []NodeRef
	tree.Root().Walk(func(n NodeRef) bool {
		for _, k := range kinds {
			if n.Kind() == k {
				found = append(found, n)
				break
			}
		}
		return true
	})
	return found
}

// methodNamed finds the method declaration with the given name.
func methodNamed(t *testing.T, tree *Tree, name string) NodeRef {
	t.Helper()
	var found NodeRef
	tree.Root().Walk(func(n NodeRef) bool {
		if found.IsValid() {
			return false
		}
		if n.Kind() == syntax.KindMethod && declName(n) == name {
			found = n
			return false
		}
		return true
	})
	require.True(t, found.IsValid(), "no method %s in tree", name)
	return found
}
