package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quay/xuma/httpmatch"
	"github.com/quay/xuma/registry"
	"github.com/quay/xuma/xlog"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <config.yaml>",
		Short: "Evaluate a matcher-tree document against a simulated HTTP request",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	addRequestFlags(cmd)
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
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

	action, ok := matcher.Evaluate(reqCtx)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no match")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), action)
	return nil
}
