package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"divyang/internal/engine"
	"divyang/internal/ui"
)

func newGuideCmd() *cobra.Command {
	var complete bool

	cmd := &cobra.Command{
		Use:   "guide <activity>",
		Short: "Show an activity's steps (--complete to finish it)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("activity is required")
			}
			if _, err := engine.ParseActivity(args[0]); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, _ := engine.ParseActivity(args[0])
			tr, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			flow, err := engine.StartFlow(a, tr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.ActivityIcon(string(a)), flow.Title()))
			if tr.IsCompleted(a) {
				fmt.Fprintln(out, ui.Muted.Render(ui.IconDone+" already completed today"))
			}

			if !complete {
				g, _ := engine.GuideFor(a)
				for i, step := range g.Steps {
					fmt.Fprintf(out, "%d. %s\n", i+1, step)
				}
				return nil
			}

			awarded := 0
			for !flow.Finished() {
				step, _ := flow.Step()
				fmt.Fprintf(out, "%s %s %s\n", ui.IconStep, ui.Muted.Render(fmt.Sprintf("%d/%d", flow.Index()+1, flow.Len())), step)
				n, err := flow.Advance(ctx)
				if err != nil {
					return err
				}
				awarded += n
			}

			if awarded > 0 {
				fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconSparkle+" Completed"), ui.Gold.Render(fmt.Sprintf("+%d points", awarded)))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("No new points: already completed today."))
			}
			fmt.Fprintln(out, ui.PointsText(tr.Points()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&complete, "complete", "c", false, "Walk through every step and mark the activity complete")

	return cmd
}
