package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quay/xuma"
	"github.com/quay/xuma/httpmatch"
	"github.com/quay/xuma/registry"
	"github.com/quay/xuma/xlog"
)

var (
	styleMatched   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	styleUnmatched = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleAction    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	styleNoMatch   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <config.yaml>",
		Short: "Evaluate a matcher-tree document and print the rule-by-rule trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	addRequestFlags(cmd)
	return cmd
}

func runTrace(cmd *cobra.Command, args []string) error {
	logCtx := xlog.With(cmd.Context(), "document_path", args[0])

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	reg, err := buildRegistry(logCtx)
	if err != nil {
		return err
	}
	matcher, err := registry.Load[httpmatch.Context, string](logCtx, reg, doc)
	if err != nil {
		return err
	}
	reqCtx, err := buildContext(cmd)
	if err != nil {
		return err
	}

	action, ok, trace := matcher.Trace(reqCtx)
	out := cmd.OutOrStdout()
	renderTrace(out, trace, 0)
	if ok {
		fmt.Fprintln(out, styleAction.Render("action: "+action))
	} else {
		fmt.Fprintln(out, styleNoMatch.Render("no match"))
	}
	return nil
}

func renderTrace(w interface{ Write([]byte) (int, error) }, trace xuma.Trace, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, step := range trace.Steps {
		style := styleUnmatched
		mark := "✗"
		if step.Matched {
			style = styleMatched
			mark = "✓"
		}
		line := fmt.Sprintf("%s[%d] %s %s", indent, step.RuleIndex, mark, step.Predicate)
		fmt.Fprintln(w, style.Render(line))
		if step.Nested != nil {
			renderTrace(w, *step.Nested, depth+1)
		}
	}
}
