package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"divyang/internal/storage"
	"divyang/internal/ui"
)

func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Print the raw persisted entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			db, cleanup, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := storage.NewKVRepo(db).List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s %s\n", ui.Key.Render(e.Key+":"), e.Value)
			}
			return nil
		},
	}

	return cmd
}
