package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/teamboard/teamboard/internal/infrastructure/migration"
	"github.com/teamboard/teamboard/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/teamboard/teamboard/internal/interfaces/http"
)

const shutdownTimeout = 30 * time.Second

var (
	opts        bootstrap.Options
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server and the reminder scheduler",
		Long:  `Start the HTTP API (health, reminder trigger, messenger configuration) and the daily reminder job.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run pending database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg, log := rt.Config, rt.Log
	log.Infow("starting server", "environment", opts.Env, "auto_migrate", autoMigrate)

	if autoMigrate {
		manager, err := migration.NewManager(&cfg.Database, log)
		if err != nil {
			return err
		}
		if err := manager.Migrate(rt.DB); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	container, err := httpRouter.NewContainer(rt.DB, cfg, log)
	if err != nil {
		return err
	}
	defer container.Shutdown()
	container.SetupRoutes()

	if err := container.StartScheduler(); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server listening", "address", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
