package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jward/regraft"
	"github.com/jward/regraft/internal/rules"
	"github.com/jward/regraft/internal/store"
	"github.com/jward/regraft/scripts"
)

var (
	flagDB    string
	flagRules string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <old-file> <new-file>",
	Short: "Align and classify declarations across two file versions",
	Long:  "Parses both versions, aligns every declaration in the old tree with its counterpart in the new tree, classifies each change, and gates it through the patch-legality policy.",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&flagDB, "db", "", "append results to a session-log database at this path")
	analyzeCmd.Flags().StringVar(&flagRules, "rules", "", "load the policy script from disk instead of the built-in one")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	start := time.Now()

	oldSrc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading old version: %w", err)
	}
	newSrc, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading new version: %w", err)
	}

	gate := rules.New(scripts.Default(), scripts.DefaultGate)
	if flagRules != "" {
		gate, err = rules.Load(flagRules)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()
	analysis, err := regraft.Analyze(ctx, oldSrc, newSrc)
	if err != nil {
		return err
	}

	var out []CLIChange
	for _, c := range analysis.Changes {
		verdict, err := gate.Evaluate(ctx, c)
		if err != nil {
			return err
		}
		out = append(out, toCLIChange(c, verdict))
	}

	if flagDB != "" {
		if err := logRun(args[0], args[1], analysis.Changes, out); err != nil {
			return fmt.Errorf("logging run: %w", err)
		}
	}

	if err := output("analyze", out, formatChangesText); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Analyzed %d declaration(s) in %s\n",
		len(out), time.Since(start).Round(time.Millisecond))
	return nil
}

func toCLIChange(c regraft.DeclarationChange, v rules.Verdict) CLIChange {
	return CLIChange{
		Name:             c.Name,
		Kind:             c.Kind,
		MethodLike:       c.MethodLike,
		OldAccessibility: c.OldAccessibility.String(),
		NewAccessibility: c.NewAccessibility.String(),
		OldAsync:         c.OldAsync,
		NewAsync:         c.NewAsync,
		OldIterator:      c.OldIterator,
		NewIterator:      c.NewIterator,
		AwaitCounts:      [2]int{c.OldAwaitCount, c.NewAwaitCount},
		YieldCounts:      [2]int{c.OldYieldCount, c.NewYieldCount},
		BodyChanged:      c.BodyChanged,
		Structural:       c.Structural,
		Fault:            c.Fault,
		Allowed:          v.Allowed,
		Reason:           v.Reason,
	}
}

func logRun(oldPath, newPath string, changes []regraft.DeclarationChange, verdicts []CLIChange) error {
	s, err := store.NewStore(flagDB)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Migrate(); err != nil {
		return err
	}

	runID, err := s.InsertRun(&store.Run{OldPath: oldPath, NewPath: newPath})
	if err != nil {
		return err
	}
	for i, c := range changes {
		_, err := s.InsertChange(&store.Change{
			RunID:            runID,
			Name:             c.Name,
			Kind:             c.Kind,
			MethodLike:       c.MethodLike,
			OldAccessibility: c.OldAccessibility.String(),
			NewAccessibility: c.NewAccessibility.String(),
			OldAsync:         c.OldAsync,
			NewAsync:         c.NewAsync,
			OldIterator:      c.OldIterator,
			NewIterator:      c.NewIterator,
			BodyChanged:      c.BodyChanged,
			Structural:       c.Structural,
			Fault:            c.Fault,
			Allowed:          verdicts[i].Allowed,
			Reason:           verdicts[i].Reason,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
