package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/infrastructure/persistence/migrations"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

const (
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang_migrate"
	StrategyAuto          = "auto"
)

// Strategy applies and inspects schema changes.
type Strategy interface {
	Migrate(db *gorm.DB) error
	MigrateDown(db *gorm.DB, steps int) error
	Version(db *gorm.DB) (int64, error)
	GetName() string
}

var ErrDownNotSupported = errors.New("down migrations are not supported by this strategy")

// GooseStrategy runs the embedded goose scripts.
type GooseStrategy struct {
	dialect string
	logger  logger.Interface
}

func NewGooseStrategy(dialect string, log logger.Interface) Strategy {
	return &GooseStrategy{
		dialect: dialect,
		logger:  log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) prepare(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(gooseScripts)
	if err := goose.SetDialect(s.dialect); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return sqlDB, nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, gooseDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, gooseDir); err != nil {
			s.logger.Errorw("down migration failed", "step", i+1, "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully", "steps", steps)
	return nil
}

func (s *GooseStrategy) Version(db *gorm.DB) (int64, error) {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) GetName() string {
	return StrategyGoose
}

// GolangMigrateStrategy runs the embedded up/down scripts with
// golang-migrate. The mysql driver needs multiStatements in the DSN because
// each file is executed as a single statement batch.
type GolangMigrateStrategy struct {
	logger logger.Interface
}

func NewGolangMigrateStrategy(log logger.Interface) Strategy {
	return &GolangMigrateStrategy{
		logger: log.With("component", "migration.golang-migrate"),
	}
}

func (s *GolangMigrateStrategy) createMigrateInstance(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	source, err := iofs.New(migrateScripts, migrateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := mysql.WithInstance(sqlDB, &mysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create MySQL driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func (s *GolangMigrateStrategy) Migrate(db *gorm.DB) error {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		s.logger.Warnw("database is in dirty state, please fix manually", "version", currentVersion)
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GolangMigrateStrategy) MigrateDown(db *gorm.DB, steps int) error {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed successfully", "steps", steps)
	return nil
}

func (s *GolangMigrateStrategy) Version(db *gorm.DB) (int64, error) {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	if dirty {
		return int64(version), fmt.Errorf("database is in dirty state at version %d", version)
	}
	return int64(version), nil
}

func (s *GolangMigrateStrategy) GetName() string {
	return StrategyGolangMigrate
}

// AutoStrategy builds the schema from the gorm models. It is the only
// strategy available for sqlite and postgres.
type AutoStrategy struct {
	logger logger.Interface
}

func NewAutoStrategy(log logger.Interface) Strategy {
	return &AutoStrategy{
		logger: log.With("component", "migration.auto"),
	}
}

func (s *AutoStrategy) Migrate(db *gorm.DB) error {
	if err := migrations.AutoMigrate(db); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return err
	}
	s.logger.Infow("auto migration completed successfully", "models", len(migrations.Models()))
	return nil
}

func (s *AutoStrategy) MigrateDown(db *gorm.DB, steps int) error {
	return ErrDownNotSupported
}

func (s *AutoStrategy) Version(db *gorm.DB) (int64, error) {
	return 0, nil
}

func (s *AutoStrategy) GetName() string {
	return StrategyAuto
}
