// Command xuma evaluates matcher-tree documents against a simulated HTTP
// request from the command line, for local authoring and debugging of
// configuration before it is loaded by a long-running service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quay/xuma/xlog"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "xuma",
		Short:         "Inspect and evaluate xuma matcher-tree documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		levelFlag, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
		var level slog.Level
		if err := level.UnmarshalText([]byte(levelFlag)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", levelFlag, err)
		}

		handler := xlog.WrapHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(slog.New(handler))

		ctx := xlog.With(context.Background(), "invocation_id", uuid.NewString())
		cmd.SetContext(ctx)
		slog.InfoContext(ctx, "starting", "command", cmd.Name())
		return nil
	}

	cmd.AddCommand(newEvalCmd(), newTraceCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xuma:", err)
		os.Exit(1)
	}
}
