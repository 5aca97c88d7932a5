package regraft

import (
	"context"
	"os"
	"testing"

	"github.com/jward/regraft/internal/csharp"
)

func benchFixture(b *testing.B, name string) []byte {
	b.Helper()
	src, err := os.ReadFile("testdata/csharp/" + name)
	if err != nil {
		b.Fatal(err)
	}
	return src
}

func BenchmarkParse(b *testing.B) {
	src := benchFixture(b, "ledger_old.cs")
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := csharp.Parse(ctx, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindPartner(b *testing.B) {
	ctx := context.Background()
	oldTree, err := csharp.Parse(ctx, benchFixture(b, "ledger_old.cs"))
	if err != nil {
		b.Fatal(err)
	}
	newTree, err := csharp.Parse(ctx, benchFixture(b, "ledger_new.cs"))
	if err != nil {
		b.Fatal(err)
	}
	decls := Declarations(oldTree.Root())
	if len(decls) == 0 {
		b.Fatal("no declarations in fixture")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, d := range decls {
			if _, err := FindPartner(oldTree.Root(), newTree.Root(), d); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkAnalyze(b *testing.B) {
	oldSrc := benchFixture(b, "ledger_old.cs")
	newSrc := benchFixture(b, "ledger_new.cs")
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Analyze(ctx, oldSrc, newSrc); err != nil {
			b.Fatal(err)
		}
	}
}
