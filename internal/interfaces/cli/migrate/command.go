package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/infrastructure/migration"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/seeds"
	"github.com/teamboard/teamboard/internal/interfaces/cli/bootstrap"
)

var (
	opts     bootstrap.Options
	strategy string
	steps    int
	withSeed bool
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect database migrations, and seed default message templates.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().StringVarP(&strategy, "strategy", "s", "", "Override database.migration_strategy (goose, golang_migrate, auto)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
	cmd.Flags().BoolVar(&withSeed, "seed", false, "Seed default message templates after migrating")
	return cmd
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE:  runStatus,
	}
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert missing message templates",
		Long:  `Insert the built-in message templates, or the ones in --file, skipping names that already exist.`,
		RunE:  runSeed,
	}
	cmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML file with a templates list (default: built-in templates)")
	return cmd
}

func seedTemplates(db *gorm.DB) (int, error) {
	templates, err := seeds.DefaultMessageTemplates()
	if seedFile != "" {
		data, readErr := os.ReadFile(seedFile)
		if readErr != nil {
			return 0, fmt.Errorf("failed to read %s: %w", seedFile, readErr)
		}
		templates, err = seeds.ParseMessageTemplates(data)
	}
	if err != nil {
		return 0, err
	}

	created, err := seeds.SeedMessageTemplates(db, templates)
	if err != nil {
		return created, fmt.Errorf("seeding failed: %w", err)
	}
	return created, nil
}

func initManager() (*bootstrap.Runtime, *migration.Manager, error) {
	rt, err := bootstrap.Init(opts)
	if err != nil {
		return nil, nil, err
	}

	dbCfg := rt.Config.Database
	if strategy != "" {
		dbCfg.MigrationStrategy = strategy
	}

	manager, err := migration.NewManager(&dbCfg, rt.Log)
	if err != nil {
		rt.Close()
		return nil, nil, err
	}
	return rt, manager, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	rt, manager, err := initManager()
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.Log.Infow("running up migrations", "environment", opts.Env, "strategy", manager.StrategyName())
	if err := manager.Migrate(rt.DB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if withSeed {
		created, err := seedTemplates(rt.DB)
		if err != nil {
			return err
		}
		rt.Log.Infow("message templates seeded", "created", created)
	}

	rt.Log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	rt, manager, err := initManager()
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.Log.Infow("running down migrations", "environment", opts.Env, "steps", steps)
	if err := manager.Rollback(rt.DB, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	rt.Log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	rt, manager, err := initManager()
	if err != nil {
		return err
	}
	defer rt.Close()

	version, err := manager.Version(rt.DB)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Migration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", opts.Env)
	fmt.Fprintf(out, "  Strategy:        %s\n", manager.StrategyName())
	fmt.Fprintf(out, "  Current Version: %d\n", version)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	created, err := seedTemplates(rt.DB)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d message template(s)\n", created)
	return nil
}
