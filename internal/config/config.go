// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"

	"proposal-pricing/core/output"
	"proposal-pricing/core/pricing"
	apperrors "proposal-pricing/internal/errors"
	"proposal-pricing/internal/logging"
)

// EnvPrefix prefixes every environment variable the configuration reads.
const EnvPrefix = "PROPOSAL_PRICING_"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Defaults are the inputs used when neither a file nor a flag sets them
	Defaults pricing.Inputs `json:"defaults"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format
	Format string `json:"format" env:"FORMAT"`

	// Locale selects report language (en, fa)
	Locale string `json:"locale" env:"LOCALE"`

	// Currency labels amounts
	Currency string `json:"currency" env:"CURRENCY"`

	// OpenBrowser shows reports in the browser instead of stdout
	OpenBrowser bool `json:"open_browser" env:"OPEN_BROWSER"`

	// NoColor disables terminal styling
	NoColor bool `json:"no_color" env:"NO_COLOR"`
}

// DefaultPath returns $HOME/.proposal-pricing.json
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".proposal-pricing.json"
	}
	return filepath.Join(homeDir, ".proposal-pricing.json")
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:  "1.0",
		Defaults: pricing.DefaultInputs(),
		Output: OutputConfig{
			Format:   string(output.FormatCLI),
			Locale:   "en",
			Currency: "IRT",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, apperrors.Wrap(apperrors.TypeConfig, "failed to parse config file", err).WithContext("path", path)
		}
	case os.IsNotExist(err):
	default:
		return nil, apperrors.Wrap(apperrors.TypeConfig, "failed to read config file", err).WithContext("path", path)
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides output and logging settings from PROPOSAL_PRICING_* variables.
func (c *Config) ApplyEnv() error {
	opts := env.Options{Prefix: EnvPrefix}
	if err := env.ParseWithOptions(&c.Output, opts); err != nil {
		return apperrors.Wrap(apperrors.TypeConfig, "invalid environment override", err)
	}
	if err := env.ParseWithOptions(&c.Logging, opts); err != nil {
		return apperrors.Wrap(apperrors.TypeConfig, "invalid environment override", err)
	}
	return nil
}

// Validate checks that the output settings name a known format and locale.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := output.LookupLocale(c.Output.Locale); err != nil {
		return err
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
