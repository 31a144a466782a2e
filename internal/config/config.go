// Package config loads the engine configuration from a YAML file and
// fills in defaults for everything the file leaves out.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/upfleet/synckit/internal/archive"
)

// EnvTokenSecret supplies Tokens.Secret when the config file doesn't.
const EnvTokenSecret = "SYNCKIT_TOKEN_SECRET"

// Duration wraps time.Duration with YAML string parsing ("24h", "30m").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// StorageConfig selects and configures the metadata database.
type StorageConfig struct {
	Driver string `yaml:"driver"` // sqlite или postgres
	DSN    string `yaml:"dsn"`
}

// JobsConfig configures the durable job queue.
type JobsConfig struct {
	Path string `yaml:"path"` // файл bbolt очереди заданий
}

// PolicyConfig holds the sync engine limits.
type PolicyConfig struct {
	MaxRetries  int `yaml:"max_retries"`
	CleanupDays int `yaml:"cleanup_days"`
}

// HealthConfig holds the health evaluator thresholds.
type HealthConfig struct {
	FailureRateWarn float64 `yaml:"failure_rate_warn"`
	BacklogLimit    int64   `yaml:"backlog_limit"`
	BacklogPenalty  int     `yaml:"backlog_penalty"`
}

// ArchiveConfig configures the queue archiver.
type ArchiveConfig struct {
	S3      archive.S3Config `yaml:"s3"`
	Enabled bool             `yaml:"enabled"`
}

// TokensConfig configures device token issuing.
type TokensConfig struct {
	Secret string   `yaml:"secret"`
	TTL    Duration `yaml:"ttl"`
}

// DaemonConfig configures the maintenance daemon.
type DaemonConfig struct {
	SweepInterval Duration `yaml:"sweep_interval"` // период обслуживания очереди
	Organizations []string `yaml:"organizations"`  // организации для health-отчетов
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn или error
	Format string `yaml:"format"` // text или json
}

// Config is the root configuration record.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Jobs    JobsConfig    `yaml:"jobs"`
	Policy  PolicyConfig  `yaml:"policy"`
	Health  HealthConfig  `yaml:"health"`
	Archive ArchiveConfig `yaml:"archive"`
	Tokens  TokensConfig  `yaml:"tokens"`
	Daemon  DaemonConfig  `yaml:"daemon"`
	Log     LogConfig     `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Driver: "sqlite", DSN: "synckit.db"},
		Jobs:    JobsConfig{Path: "synckit-jobs.db"},
		Policy:  PolicyConfig{MaxRetries: 3, CleanupDays: 30},
		Health:  HealthConfig{FailureRateWarn: 0.2, BacklogLimit: 50, BacklogPenalty: 20},
		Tokens:  TokensConfig{TTL: Duration(24 * time.Hour)},
		Daemon:  DaemonConfig{SweepInterval: Duration(time.Hour)},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path over the defaults. Empty path
// returns pure defaults. The token secret falls back to the
// SYNCKIT_TOKEN_SECRET environment variable.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if cfg.Tokens.Secret == "" {
		cfg.Tokens.Secret = os.Getenv(EnvTokenSecret)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.DSN == "" {
		return fmt.Errorf("storage dsn cannot be empty")
	}
	if c.Jobs.Path == "" {
		return fmt.Errorf("jobs path cannot be empty")
	}
	if c.Archive.Enabled && c.Archive.S3.Bucket == "" {
		return fmt.Errorf("archive is enabled but s3 bucket is not set")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// NewLogger builds the slog logger described by the Log section.
func (c *Config) NewLogger() *slog.Logger {
	level := slog.LevelInfo
	switch c.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
