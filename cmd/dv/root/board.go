package root

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"divyang/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive guide board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			tr, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, tr, cfg.ResetInterval, cmd.OutOrStdout())
		},
	}

	return cmd
}
