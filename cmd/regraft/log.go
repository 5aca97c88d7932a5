package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jward/regraft/internal/store"
)

var (
	flagLogDB string
	flagRunID int64
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recorded analysis runs from a session-log database",
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&flagLogDB, "db", "", "session-log database path (required)")
	logCmd.Flags().Int64Var(&flagRunID, "run", 0, "show the change rows of one run instead of the run list")
	logCmd.MarkFlagRequired("db")
}

func runLog(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(flagLogDB)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Migrate(); err != nil {
		return err
	}

	if flagRunID != 0 {
		changes, err := s.ChangesByRun(flagRunID)
		if err != nil {
			return err
		}
		out := make([]CLIChange, 0, len(changes))
		for _, c := range changes {
			out = append(out, CLIChange{
				Name:             c.Name,
				Kind:             c.Kind,
				MethodLike:       c.MethodLike,
				OldAccessibility: c.OldAccessibility,
				NewAccessibility: c.NewAccessibility,
				OldAsync:         c.OldAsync,
				NewAsync:         c.NewAsync,
				OldIterator:      c.OldIterator,
				NewIterator:      c.NewIterator,
				BodyChanged:      c.BodyChanged,
				Structural:       c.Structural,
				Fault:            c.Fault,
				Allowed:          c.Allowed,
				Reason:           c.Reason,
			})
		}
		return output("log", out, formatChangesText)
	}

	runs, err := s.Runs()
	if err != nil {
		return err
	}
	out := make([]CLIRun, 0, len(runs))
	for _, r := range runs {
		out = append(out, CLIRun{
			ID:        r.ID,
			OldPath:   r.OldPath,
			NewPath:   r.NewPath,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}
	return output("log", out, formatRunsText)
}
