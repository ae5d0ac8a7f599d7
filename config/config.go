package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres    PostgresConfig `yaml:"postgres"`
	HTTP        HTTPConfig     `yaml:"http"`
	Media       MediaConfig    `yaml:"media"`
	Environment string         `yaml:"environment"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// MediaConfig holds the managed media tree configuration. Root is the
// directory player and team photos are copied into and served from.
type MediaConfig struct {
	Root string `yaml:"root"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// .env is optional; real env vars still win below.
	_ = godotenv.Load()

	var cfg Config

	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("MEDIA_ROOT"); v != "" {
		cfg.Media.Root = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Environment = v
	}

	cfg.applyDefaults()

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is not set (config file %q or DATABASE_URL)", filename)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.Media.Root == "" {
		c.Media.Root = "media"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
}
