package root

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"divyang/internal/engine"
	"divyang/internal/storage"
	"divyang/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently completed activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, db, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			repo := storage.NewCompletionRepo(db)
			recent, err := repo.Recent(ctx, limit)
			if err != nil {
				return err
			}
			week, err := repo.CountSince(ctx, time.Now().Add(-7*24*time.Hour))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "History"))
			fmt.Fprintln(out, ui.LabelValue("Last 7 days", fmt.Sprintf("%d activities", week)))
			if len(recent) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing completed yet)"))
				return nil
			}
			for _, c := range recent {
				a := engine.ActivityID(c.Activity)
				fmt.Fprintf(out, "- %s %-9s %s %s\n",
					ui.ActivityIcon(c.Activity),
					a.DisplayName(),
					ui.Gold.Render(fmt.Sprintf("+%d", c.PointsAwarded)),
					ui.Muted.Render(humanize.Time(c.CompletedAt)),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Number of entries to show")

	return cmd
}
