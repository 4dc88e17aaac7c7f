package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/Cour-de-cassation/juritj-collect/pkg/database"
	"github.com/Cour-de-cassation/juritj-collect/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvJuritjEnv             = "JURITJ_ENV"
	EnvJuritjShutdownTimeout = "JURITJ_SHUTDOWN_TIMEOUT"
	EnvJuritjVersion         = "JURITJ_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "JURITJ_DB_HOST",
	Port:            "JURITJ_DB_PORT",
	Name:            "JURITJ_DB_NAME",
	User:            "JURITJ_DB_USER",
	Password:        "JURITJ_DB_PASSWORD",
	SSLMode:         "JURITJ_DB_SSL_MODE",
	MaxOpenConns:    "JURITJ_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "JURITJ_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "JURITJ_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "JURITJ_DB_CONN_TIMEOUT",
}

var rawStorageEnv = &storage.Env{
	ContainerName:    "JURITJ_STORAGE_RAW_CONTAINER_NAME",
	ConnectionString: "JURITJ_STORAGE_CONNECTION_STRING",
}

var normalizedStorageEnv = &storage.Env{
	ContainerName:    "JURITJ_STORAGE_NORMALIZED_CONTAINER_NAME",
	ConnectionString: "JURITJ_STORAGE_CONNECTION_STRING",
}

// Config is the root configuration for the collect service. Storage is
// split into the raw container, which receives staged intake
// envelopes, and the normalized container, which receives batch
// output.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	RawStorage      storage.Config  `toml:"raw_storage"`
	NormalizedStore storage.Config  `toml:"normalized_storage"`
	API             APIConfig       `toml:"api"`
	Batch           BatchConfig     `toml:"batch"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the JURITJ_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvJuritjEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.RawStorage.Merge(&overlay.RawStorage)
	c.NormalizedStore.Merge(&overlay.NormalizedStore)
	c.API.Merge(&overlay.API)
	c.Batch.Merge(&overlay.Batch)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.RawStorage.Finalize(rawStorageEnv); err != nil {
		return fmt.Errorf("raw storage: %w", err)
	}
	if err := c.NormalizedStore.Finalize(normalizedStorageEnv); err != nil {
		return fmt.Errorf("normalized storage: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Batch.Finalize(); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvJuritjShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvJuritjVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvJuritjEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
