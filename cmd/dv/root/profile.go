package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"divyang/internal/engine"
	"divyang/internal/ui"
)

func newProfileCmd() *cobra.Command {
	var name string
	var age string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		Long: `Show the profile, or replace it when --name or --age is given.

A flag left out keeps its current value. Age is read like a number field:
leading digits count, anything else becomes 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tr, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			p := tr.Profile()
			nameSet := cmd.Flags().Changed("name")
			ageSet := cmd.Flags().Changed("age")
			if nameSet || ageSet {
				if nameSet {
					p.Name = name
				}
				if ageSet {
					p.Age = engine.ParseAge(age)
				}
				if err := tr.SetUserProfile(ctx, p); err != nil {
					return err
				}
				p = tr.Profile()
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Profile saved"))
			}

			fmt.Fprintln(out, ui.Heading(ui.IconUser, p.Name))
			fmt.Fprintln(out, ui.LabelValue("Age", p.Age))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&age, "age", "a", "", "Age in years")

	return cmd
}
