package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

// output prints results in the selected format: the JSON envelope on
// stdout, or the given text formatter.
func output[T any](command string, results T, text func(T)) error {
	if flagFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(CLIResult{Command: command, Results: results})
	}
	text(results)
	return nil
}

func formatChangesText(changes []CLIChange) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tACCESS\tASYNC\tITERATOR\tBODY\tVERDICT")
	for _, c := range changes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name, c.Kind,
			transition(c.OldAccessibility, c.NewAccessibility),
			transition(boolMark(c.OldAsync), boolMark(c.NewAsync)),
			transition(boolMark(c.OldIterator), boolMark(c.NewIterator)),
			bodyMark(c),
			verdictMark(c),
		)
	}
	tw.Flush()
}

func formatBodiesText(bodies []CLIBody) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tACCESS\tASYNC\tITERATOR\tBODY")
	for _, b := range bodies {
		body := "-"
		if b.BodyKind != "" {
			body = fmt.Sprintf("%s [%d..%d)", b.BodyKind, b.BodyStart, b.BodyEnd)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			b.Name, b.Kind, b.Accessibility, boolMark(b.Async), boolMark(b.Iterator), body)
	}
	tw.Flush()
}

func formatRunsText(runs []CLIRun) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tOLD\tNEW\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.OldPath, r.NewPath, r.CreatedAt)
	}
	tw.Flush()
}

// transition renders "a" when both sides agree and "a->b" when they differ.
func transition(old, new string) string {
	if old == new {
		return old
	}
	return old + "->" + new
}

func boolMark(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func bodyMark(c CLIChange) string {
	switch {
	case c.Structural:
		return "structural"
	case c.BodyChanged:
		return "changed"
	default:
		return "same"
	}
}

func verdictMark(c CLIChange) string {
	if c.Allowed {
		return "allow"
	}
	if c.Reason != "" {
		return "deny: " + c.Reason
	}
	return "deny"
}
