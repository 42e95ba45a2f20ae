// Package config loads hillclimb settings from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/multisource"
	"github.com/katalvlaran/hillclimb/step"
)

// Environment variables consulted by Load after the file is read.
const (
	EnvStrategy = "HILLCLIMB_STRATEGY"
	EnvWorkers  = "HILLCLIMB_WORKERS"
	EnvLogLevel = "HILLCLIMB_LOG_LEVEL"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all hillclimb settings.
type Config struct {
	// Strategy is "independent" or "reverse".
	Strategy string `yaml:"strategy"`
	// Workers bounds concurrent searches; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// MaxClimb is the largest legal climb per step.
	MaxClimb int `yaml:"max_climb"`
	// Render prints the map with the route highlighted.
	Render bool `yaml:"render"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Strategy: multisource.Independent.String(),
		Workers:  0,
		MaxClimb: 1,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied before validation.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvWorkers, v)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if _, err := multisource.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalid, c.Workers)
	}
	if c.MaxClimb < 0 {
		return fmt.Errorf("%w: max_climb cannot be negative (%d)", ErrInvalid, c.MaxClimb)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	return nil
}

// Rule returns the transition rule for MaxClimb.
func (c *Config) Rule() step.Rule {
	return step.Climb(c.MaxClimb)
}

// MultiSourceOptions translates the settings into multisource options.
// Call Validate first; an unknown strategy falls back to Independent.
func (c *Config) MultiSourceOptions(logger *zap.Logger) []multisource.Option {
	st, _ := multisource.ParseStrategy(c.Strategy)
	opts := []multisource.Option{
		multisource.WithStrategy(st),
		multisource.WithRule(c.Rule()),
		multisource.WithLogger(logger),
	}
	if c.Workers > 0 {
		opts = append(opts, multisource.WithWorkers(c.Workers))
	}
	return opts
}

// NewLogger builds a zap logger at the configured level, from the
// production preset unless Development is set.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
