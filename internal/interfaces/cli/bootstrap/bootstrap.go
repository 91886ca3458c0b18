// Package bootstrap loads configuration and initialises the process-wide
// logger, business timezone and database for every CLI command.
package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/infrastructure/config"
	"github.com/teamboard/teamboard/internal/infrastructure/database"
	"github.com/teamboard/teamboard/internal/shared/biztime"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

// Options are the flags shared by every command.
type Options struct {
	Env        string
	ConfigPath string
}

type Runtime struct {
	Config *config.Config
	Log    logger.Interface
	DB     *gorm.DB
}

// Init loads configuration and opens the database. Callers must Close the
// returned runtime.
func Init(opts Options) (*Runtime, error) {
	cfg, err := config.Load(opts.Env, opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(opts.Env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Runtime{
		Config: cfg,
		Log:    log,
		DB:     database.Get(),
	}, nil
}

func (r *Runtime) Close() {
	if err := database.Close(); err != nil {
		r.Log.Warnw("failed to close database", "error", err)
	}
	_ = logger.Sync()
}

// GinMode maps an environment name to a gin mode.
func GinMode(env string) string {
	switch env {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
