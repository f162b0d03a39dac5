// Package config loads application configuration from environment
// variables and an optional YAML file, environment taking precedence.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"studentpulse/pkg/contracts/domain"
)

// envPrefix namespaces the environment variables (STUPULSE_SERVER_PORT, ...).
const envPrefix = "STUPULSE"

// DefaultConfigFile is looked up relative to the working directory.
const DefaultConfigFile = "studentpulse.yaml"

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Upload  UploadConfig  `yaml:"upload" envconfig:"UPLOAD"`
	CORS    CORSConfig    `yaml:"cors" envconfig:"CORS"`

	// Normalization optionally overrides the built-in per-field radar
	// ranges, keyed by field label (德育, 智育, ...). YAML only.
	Normalization map[string]RangeConfig `yaml:"normalization" ignored:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
}

// UploadConfig bounds spreadsheet uploads.
type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes" envconfig:"MAX_BYTES" default:"20971520" validate:"min=1"`
}

// CORSConfig contains browser cross-origin configuration.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// RangeConfig is a YAML-side (min,max) pair.
type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Load loads configuration from environment variables and the optional
// config file. File values override defaults; environment overrides
// the file.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile == "" {
		configFile = DefaultConfigFile
	}
	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
		// Environment wins over the file.
		if err := envconfig.Process(envPrefix, &cfg); err != nil {
			return nil, fmt.Errorf("failed to reapply env config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks field constraints and the normalization overrides.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	for label, r := range c.Normalization {
		if _, ok := domain.KindByLabel(label); !ok {
			return fmt.Errorf("normalization: unknown field %q", label)
		}
		if r.Max <= r.Min {
			return fmt.Errorf("normalization: %s: max (%v) must be greater than min (%v)", label, r.Max, r.Min)
		}
	}
	return nil
}

// NormalizationOverrides returns the configured range overrides keyed
// by fact kind. Validate must have accepted the config first.
func (c *Config) NormalizationOverrides() map[domain.FactKind]domain.ScoreRange {
	if len(c.Normalization) == 0 {
		return nil
	}
	out := make(map[domain.FactKind]domain.ScoreRange, len(c.Normalization))
	for label, r := range c.Normalization {
		if kind, ok := domain.KindByLabel(label); ok {
			out[kind] = domain.ScoreRange{Min: r.Min, Max: r.Max}
		}
	}
	return out
}
