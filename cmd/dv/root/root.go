package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"divyang/internal/config"
	"divyang/internal/logging"
	"divyang/internal/ui"
)

const Version = "0.1.0"

// cfg is filled in before any subcommand runs.
var cfg config.Config

func newRootCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "dv",
		Short:         "Divyang — step-by-step daily living guides",
		Long:          "Divyang walks you through daily-living activities step by step, awards points for each one you finish, and starts fresh every day.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("db") {
				c.DBPath = dbPath
			}
			cfg = c
			logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default ~/.divyang.db, env DIVYANG_DB_PATH)")

	cmd.AddCommand(
		newStatusCmd(),
		newListCmd(),
		newGuideCmd(),
		newProfileCmd(),
		newHistoryCmd(),
		newStoreCmd(),
		newBoardCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
