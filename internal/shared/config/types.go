package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	Timezone string `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	// MigrationStrategy is goose, golang_migrate or auto. The SQL scripts
	// target MySQL; other drivers use auto.
	MigrationStrategy string `mapstructure:"migration_strategy"`
}

// GetDSN builds the driver specific connection string.
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database)
	case "sqlite":
		return d.Path
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC&multiStatements=true",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// MessengerConfig holds the messaging provider endpoint and the environment
// fallback credentials used when no "default" configuration record exists.
type MessengerConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	NumberKey      string `mapstructure:"number_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (m *MessengerConfig) Timeout() time.Duration {
	if m.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(m.TimeoutSeconds) * time.Second
}

type ReminderConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Cron          string        `mapstructure:"cron"`
	DispatchDelay time.Duration `mapstructure:"dispatch_delay"`
	LeaseTTL      time.Duration `mapstructure:"lease_ttl"`
	LeaseBackend  string        `mapstructure:"lease_backend"`
	TriggerSecret string        `mapstructure:"trigger_secret"`
}

type CryptoConfig struct {
	EncryptionKey string `mapstructure:"encryption_key"`
}
