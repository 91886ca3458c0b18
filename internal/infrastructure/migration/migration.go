// Package migration selects and runs the schema migration strategy for the
// configured database driver.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/shared/config"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

// Manager runs one Strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy named in cfg. The SQL scripts are written
// for MySQL, so other drivers only accept auto; an empty strategy defaults
// to goose on MySQL and auto elsewhere.
func NewManager(cfg *config.DatabaseConfig, log logger.Interface) (*Manager, error) {
	isMySQL := cfg.Driver == "" || cfg.Driver == "mysql"

	name := cfg.MigrationStrategy
	if name == "" {
		name = StrategyAuto
		if isMySQL {
			name = StrategyGoose
		}
	}

	var strategy Strategy
	switch name {
	case StrategyAuto:
		strategy = NewAutoStrategy(log)
	case StrategyGoose, StrategyGolangMigrate:
		if !isMySQL {
			return nil, fmt.Errorf("migration strategy %s requires the mysql driver, got %s", name, cfg.Driver)
		}
		if name == StrategyGoose {
			strategy = NewGooseStrategy("mysql", log)
		} else {
			strategy = NewGolangMigrateStrategy(log)
		}
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", name)
	}

	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

func (m *Manager) Rollback(db *gorm.DB, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("rollback steps must be positive, got %d", steps)
	}
	m.logger.Infow("rolling back database migration", "strategy", m.strategy.GetName(), "steps", steps)

	if err := m.strategy.MigrateDown(db, steps); err != nil {
		return fmt.Errorf("rollback failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

func (m *Manager) Version(db *gorm.DB) (int64, error) {
	return m.strategy.Version(db)
}

func (m *Manager) StrategyName() string {
	return m.strategy.GetName()
}
