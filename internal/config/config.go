package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Port int    `envconfig:"APP_PORT" default:"8000"`
	DB   DBConfig
}

// database configuration; the connection target is assembled from individual
// components for flexibility across deployments
type DBConfig struct {
	Host              string        `envconfig:"DB_HOST" default:"localhost"`
	User              string        `envconfig:"DB_USER" default:"postgres"`
	Password          string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Name              string        `envconfig:"DB_NAME" default:"appdb"`
	ConnectAttempts   int           `envconfig:"DB_CONNECT_ATTEMPTS" default:"5"`
	ConnectRetryDelay time.Duration `envconfig:"DB_CONNECT_RETRY_DELAY" default:"2s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.Host == "" {
		return fmt.Errorf("DB_HOST must not be empty")
	}
	if c.DB.User == "" {
		return fmt.Errorf("DB_USER must not be empty")
	}
	if c.DB.Name == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	if c.DB.ConnectAttempts < 1 {
		return fmt.Errorf("DB_CONNECT_ATTEMPTS must be at least 1")
	}
	if c.DB.ConnectRetryDelay < 0 {
		return fmt.Errorf("DB_CONNECT_RETRY_DELAY must be non-negative")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DatabaseURL assembles the Postgres connection string from the individual
// DB_* components.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:5432/%s", c.DB.User, c.DB.Password, c.DB.Host, c.DB.Name)
}

// MaskedDatabaseURL is DatabaseURL with the credential hidden, safe to log.
func (c *Config) MaskedDatabaseURL() string {
	return fmt.Sprintf("postgresql://%s:***@%s:5432/%s", c.DB.User, c.DB.Host, c.DB.Name)
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, DB.Host=%s, DB.Name=%s, DB.ConnectAttempts=%d, DB.ConnectRetryDelay=%s}",
		c.Env, c.Port, c.DB.Host, c.DB.Name, c.DB.ConnectAttempts, c.DB.ConnectRetryDelay)
}
