package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"divyang/internal/engine"
	"divyang/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, points and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tr, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := tr.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHeart, "Divyang"))
			fmt.Fprintln(out, ui.LabelValue("Name", s.Profile.Name))
			fmt.Fprintln(out, ui.LabelValue("Age", s.Profile.Age))
			fmt.Fprintln(out, ui.PointsText(s.Points))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Progress"))
			fmt.Fprintf(out, "%s %s\n",
				ui.ProgressBar(len(s.Completed), s.Total, 24),
				ui.Muted.Render(fmt.Sprintf("%d/%d completed (%d%%)", len(s.Completed), s.Total, s.Percent())),
			)
			fmt.Fprintln(out, "")

			remaining := s.Remaining()
			if len(remaining) == 0 {
				fmt.Fprintln(out, ui.Good.Render(ui.IconSparkle+" Everything done for today!"))
				return nil
			}
			fmt.Fprintln(out, ui.H2.Render("Activities to complete:"))
			for _, a := range engine.Activities {
				fmt.Fprintf(out, "- %s %s\n", ui.DoneMark(s.IsCompleted(a)), a.DisplayName())
			}
			return nil
		},
	}

	return cmd
}
