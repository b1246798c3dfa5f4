// Package config loads the server's YAML configuration, applies environment
// variable overrides and defaults, and validates the result.
package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/marketpulse-io/marketpulse/internal/version"
	"github.com/marketpulse-io/marketpulse/pkg/errors"
	"github.com/marketpulse-io/marketpulse/pkg/marketdata"
)

// SymbolConfig describes one tradable index.
type SymbolConfig struct {
	// StrikeInterval is the gap between adjacent option strikes.
	StrikeInterval float64 `yaml:"strike_interval" validate:"gt=0"`
	// LotSize is the contract multiplier used for payoff calculations.
	LotSize float64 `yaml:"lot_size" validate:"gte=0"`
}

// Config holds all application configuration.
type Config struct {
	// Version is the server version this config was written for. Checked
	// against the build version at startup; "main" skips the check.
	Version string `yaml:"version" validate:"required"`

	Server struct {
		// ListenAddr is the host:port the HTTP server binds to.
		ListenAddr string `yaml:"listen_addr" validate:"required"`
		// StreamIntervalSeconds is the cadence of websocket pushes.
		StreamIntervalSeconds int `yaml:"stream_interval_seconds" validate:"gt=0"`
	} `yaml:"server"`

	Provider struct {
		// Type selects the upstream market data provider.
		Type marketdata.ProviderType `yaml:"type" validate:"required"`

		marketdata.Config `yaml:",inline"`
	} `yaml:"provider"`

	// Symbols maps internal index names to their option parameters.
	Symbols map[string]SymbolConfig `yaml:"symbols" validate:"required,min=1,dive"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, defaults, validation and the version compatibility check. A
// missing file is not an error; defaults and the environment fill in.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, "failed to read config file", err)
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, "failed to parse config file", err)
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MARKETPULSE_LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}

	if v := os.Getenv("MARKETPULSE_STREAM_INTERVAL"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.Server.StreamIntervalSeconds = seconds
		}
	}

	if v := os.Getenv("MARKETPULSE_PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}

	if v := os.Getenv("MARKETPULSE_PROVIDER_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.Provider.TimeoutSeconds = seconds
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = version.GetVersion()
	}

	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}

	if cfg.Server.StreamIntervalSeconds == 0 {
		cfg.Server.StreamIntervalSeconds = 5
	}

	if cfg.Provider.Type == "" {
		cfg.Provider.Type = marketdata.ProviderYahoo
	}

	if len(cfg.Symbols) == 0 {
		cfg.Symbols = map[string]SymbolConfig{
			"NIFTY":     {StrikeInterval: 50, LotSize: 75},
			"SENSEX":    {StrikeInterval: 100, LotSize: 20},
			"BANKNIFTY": {StrikeInterval: 100, LotSize: 35},
		}
	}
}

// Validate checks structural constraints and version compatibility.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, "invalid config", err)
	}

	if err := version.CheckVersionCompatibility(version.GetVersion(), c.Version); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidVersion, "config version is incompatible with this server", err)
	}

	return nil
}

// Symbol returns the configuration for an index, or an error when the
// symbol is unknown.
func (c *Config) Symbol(name string) (SymbolConfig, error) {
	symbol, ok := c.Symbols[name]
	if !ok {
		return SymbolConfig{}, errors.Newf(errors.ErrCodeInvalidParameter, "unknown symbol: %s", name)
	}

	return symbol, nil
}
