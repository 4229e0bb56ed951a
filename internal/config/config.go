// Package config loads the catalog's application configuration.
//
// Values are resolved in three layers: built-in defaults, an optional YAML
// file, then environment variables. Environment variables always win.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/infra/db"
	"magazine-catalog/internal/observability/logging"
	envconfig "magazine-catalog/pkg/config"
)

// Config represents the application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DatabaseConfig selects the store and sizes its connection pool.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	BreakerEnabled  bool          `yaml:"breaker_enabled"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig says where the process pushes its metrics before it exits.
// An empty PushgatewayURL disables the push.
type MetricsConfig struct {
	PushgatewayURL string `yaml:"pushgateway_url"`
	Job            string `yaml:"job"`
}

// Default returns the configuration used when neither a file nor the environment
// says otherwise: a local SQLite file and JSON logs at info level.
func Default() Config {
	pool := db.DefaultConnectionConfig()
	return Config{
		Database: DatabaseConfig{
			Driver:          string(db.DialectSQLite),
			URL:             "catalog.db",
			MaxOpenConns:    pool.MaxOpenConns,
			MaxIdleConns:    pool.MaxIdleConns,
			ConnMaxLifetime: pool.ConnMaxLifetime,
			ConnMaxIdleTime: pool.ConnMaxIdleTime,
			BreakerEnabled:  true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatJSON,
		},
		Metrics: MetricsConfig{
			Job: "catalog-migrate",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
// The path parameter is expected to come from a trusted source (command-line flag).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path is provided by trusted source (CLI flag), not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// applyEnv overrides cfg with any of the supported environment variables that are set.
//
// Environment variables:
//   - DATABASE_DRIVER: sqlite or postgres
//   - DATABASE_URL: SQLite file path or PostgreSQL connection string
//   - DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS
//   - DB_CONN_MAX_LIFETIME, DB_CONN_MAX_IDLE_TIME: durations such as "1h" or "30m"
//   - DB_BREAKER_ENABLED: guard connection acquisition with a circuit breaker
//   - LOG_LEVEL: debug, info, warn or error
//   - LOG_FORMAT: json or text
//   - PUSHGATEWAY_URL: Prometheus Pushgateway base URL, e.g. http://pushgateway:9091
//   - PUSHGATEWAY_JOB: job label for pushed metrics
func (c *Config) applyEnv() {
	d := &c.Database
	d.Driver = envconfig.GetEnvString("DATABASE_DRIVER", d.Driver)
	d.URL = envconfig.GetEnvString("DATABASE_URL", d.URL)
	d.MaxOpenConns = envconfig.GetEnvInt("DB_MAX_OPEN_CONNS", d.MaxOpenConns)
	d.MaxIdleConns = envconfig.GetEnvInt("DB_MAX_IDLE_CONNS", d.MaxIdleConns)
	d.ConnMaxLifetime = envconfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", d.ConnMaxLifetime)
	d.ConnMaxIdleTime = envconfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", d.ConnMaxIdleTime)
	d.BreakerEnabled = envconfig.GetEnvBool("DB_BREAKER_ENABLED", d.BreakerEnabled)

	c.Log.Level = envconfig.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envconfig.GetEnvString("LOG_FORMAT", c.Log.Format)

	c.Metrics.PushgatewayURL = envconfig.GetEnvString("PUSHGATEWAY_URL", c.Metrics.PushgatewayURL)
	c.Metrics.Job = envconfig.GetEnvString("PUSHGATEWAY_JOB", c.Metrics.Job)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := db.ParseDialect(c.Database.Driver); err != nil {
		errs = append(errs, err)
	}
	if c.Database.URL == "" {
		errs = append(errs, errors.New("database url is required"))
	}
	if c.Database.MaxOpenConns <= 0 {
		errs = append(errs, fmt.Errorf("max_open_conns must be positive, got %d", c.Database.MaxOpenConns))
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, fmt.Errorf("max_idle_conns must be between 0 and max_open_conns, got %d", c.Database.MaxIdleConns))
	}
	if err := envconfig.ValidatePositiveDuration(c.Database.ConnMaxLifetime); err != nil {
		errs = append(errs, fmt.Errorf("conn_max_lifetime: %w", err))
	}
	if err := envconfig.ValidateNonNegativeDuration(c.Database.ConnMaxIdleTime); err != nil {
		errs = append(errs, fmt.Errorf("conn_max_idle_time: %w", err))
	}
	if c.Log.Format != logging.FormatJSON && c.Log.Format != logging.FormatText {
		errs = append(errs, fmt.Errorf("log format must be %q or %q, got %q", logging.FormatJSON, logging.FormatText, c.Log.Format))
	}

	if c.Metrics.PushgatewayURL != "" {
		if u, err := url.Parse(c.Metrics.PushgatewayURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("pushgateway_url must be an http(s) URL, got %q", c.Metrics.PushgatewayURL))
		}
		if c.Metrics.Job == "" {
			errs = append(errs, errors.New("metrics job is required when pushgateway_url is set"))
		}
	}

	return errors.Join(errs...)
}

// Options converts the database section into db.Open options.
func (d DatabaseConfig) Options() (db.Options, error) {
	dialect, err := db.ParseDialect(d.Driver)
	if err != nil {
		return db.Options{}, err
	}
	return db.Options{
		Dialect: dialect,
		DSN:     d.URL,
		Pool: db.ConnectionConfig{
			MaxOpenConns:    d.MaxOpenConns,
			MaxIdleConns:    d.MaxIdleConns,
			ConnMaxLifetime: d.ConnMaxLifetime,
			ConnMaxIdleTime: d.ConnMaxIdleTime,
		},
	}, nil
}
