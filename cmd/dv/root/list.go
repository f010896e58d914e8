package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"divyang/internal/engine"
	"divyang/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tr, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			for _, a := range engine.Activities {
				g, _ := engine.GuideFor(a)
				fmt.Fprintf(out, "%s %s %-9s %s\n",
					ui.DoneMark(tr.IsCompleted(a)),
					ui.ActivityIcon(string(a)),
					string(a),
					ui.Muted.Render(fmt.Sprintf("%s (%d steps)", g.Title, len(g.Steps))),
				)
			}
			return nil
		},
	}

	return cmd
}
