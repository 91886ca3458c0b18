package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teamboard/teamboard/internal/interfaces/cli/messenger"
	"github.com/teamboard/teamboard/internal/interfaces/cli/migrate"
	"github.com/teamboard/teamboard/internal/interfaces/cli/remind"
	"github.com/teamboard/teamboard/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "teamboard",
		Short: "Teamboard reminder scheduling and dispatch engine",
		Long: `Teamboard evaluates activity and task reminders every day, records in-app
notifications and sends the due messages to messaging groups.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		remind.NewCommand(),
		migrate.NewCommand(),
		messenger.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
