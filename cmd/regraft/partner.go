package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jward/regraft"
	"github.com/jward/regraft/internal/csharp"
)

var flagPos int

var partnerCmd = &cobra.Command{
	Use:   "partner <old-file> <new-file>",
	Short: "Map a byte position in the old version to its counterpart",
	Long:  "Descends both trees in lockstep from the given byte offset, returning the leaf token at that position in the old version and its structural partner in the new version.",
	Args:  cobra.ExactArgs(2),
	RunE:  runPartner,
}

func init() {
	partnerCmd.Flags().IntVar(&flagPos, "pos", 0, "absolute byte offset in the old version")
}

var bodiesCmd = &cobra.Command{
	Use:   "bodies <file>",
	Short: "List declarations and their executable bodies in one file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBodies,
}

func runPartner(cmd *cobra.Command, args []string) error {
	oldSrc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading old version: %w", err)
	}
	newSrc, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading new version: %w", err)
	}

	ctx := context.Background()
	oldTree, err := csharp.Parse(ctx, oldSrc)
	if err != nil {
		return err
	}
	newTree, err := csharp.Parse(ctx, newSrc)
	if err != nil {
		return err
	}

	oldLeaf, newLeaf, err := regraft.FindLeafNodeAndPartner(oldTree.Root(), flagPos, newTree.Root())
	if err != nil {
		return err
	}

	result := CLIPartner{
		Position: flagPos,
		Kind:     oldLeaf.Kind().String(),
		OldStart: oldLeaf.Span().Start,
		OldEnd:   oldLeaf.Span().End(),
		NewStart: newLeaf.Span().Start,
		NewEnd:   newLeaf.Span().End(),
		LeafText: strings.TrimSpace(oldLeaf.Text()),
	}
	return output("partner", result, func(r CLIPartner) {
		fmt.Printf("%s %q old [%d..%d) -> new [%d..%d)\n",
			r.Kind, r.LeafText, r.OldStart, r.OldEnd, r.NewStart, r.NewEnd)
	})
}

func runBodies(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	tree, err := csharp.Parse(context.Background(), src)
	if err != nil {
		return err
	}

	var out []CLIBody
	for _, decl := range regraft.Declarations(tree.Root()) {
		body := regraft.Body(decl)
		row := CLIBody{
			Kind:          decl.Kind().String(),
			Accessibility: regraft.AccessibilityFromModifiers(regraft.Modifiers(decl)).String(),
			Async:         regraft.IsAsyncMethodOrLambda(decl),
			Iterator:      regraft.IsIteratorMethod(decl),
		}
		if body.IsValid() {
			row.BodyStart = body.Span().Start
			row.BodyEnd = body.Span().End()
			row.BodyKind = body.Kind().String()
		}
		row.Name = declDisplayName(decl)
		out = append(out, row)
	}
	return output("bodies", out, formatBodiesText)
}

// declDisplayName prefers the declaration's own span text up to the first
// parenthesis or brace, trimmed; good enough for a human-facing listing.
func declDisplayName(decl regraft.NodeRef) string {
	t := decl.Text()
	if i := strings.IndexAny(t, "({=\n"); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}
