// Package remind runs a single reminder pass from the command line.
package remind

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamboard/teamboard/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/teamboard/teamboard/internal/interfaces/http"
)

var (
	opts    bootstrap.Options
	timeout time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run one reminder pass now",
		Long: `Evaluate every enabled reminder for today, create in-app notifications and
send the due group messages. Fails when another run holds the lease.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the run after this long (default: reminder.lease_ttl)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	container, err := httpRouter.NewContainer(rt.DB, rt.Config, rt.Log)
	if err != nil {
		return err
	}
	defer container.Shutdown()

	if timeout <= 0 {
		timeout = rt.Config.Reminder.LeaseTTL
	}
	ctx := cmd.Context()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := container.ReminderUseCase().ProcessAllReminders(ctx)
	if result != nil {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	}
	return err
}
