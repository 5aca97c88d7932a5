package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagFormat string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "regraft",
	Short:         "Correlate two versions of a C# file for in-place patching",
	Long:          "Regraft parses the old and new version of a source file, aligns declarations across the edit, classifies each change, and gates it through a patch-legality policy.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(partnerCmd)
	rootCmd.AddCommand(bodiesCmd)
	rootCmd.AddCommand(logCmd)
}

func validateFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("invalid format %q: must be json or text", format)
}
