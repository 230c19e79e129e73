// Package config loads shopctl settings from ~/.shopctl/config.yaml with
// environment variable overrides. Every field has a working default: a
// missing config file is the normal case, not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/soutech/shopctl/internal/errors"
)

// Config holds all user-tunable settings.
type Config struct {
	// APIURL is the storefront backend base URL
	APIURL string `yaml:"api_url"`
	// PageSize is the catalog page size for listings and the TUI
	PageSize int `yaml:"page_size"`
	// Locale is a BCP 47 tag used for sorting and money formatting
	Locale string `yaml:"locale"`
	// Currency is the ISO 4217 display currency
	Currency string `yaml:"currency"`
	// StateDir overrides where the token, profile cache and cart live
	StateDir string `yaml:"state_dir"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIURL:    "http://localhost:8000",
		PageSize:  8,
		Locale:    "pt-BR",
		Currency:  "BRL",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// DefaultPath returns the standard config file location,
// ~/.shopctl/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".shopctl", "config.yaml"), nil
}

// Load reads the config file at path, if it exists, and applies
// environment overrides on top of the defaults. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "read config file", err)
		}
	} else {
		// Expand environment variables in the config
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "parse config file", err).
				WithSuggestion(fmt.Sprintf("Check the YAML syntax in %s", path))
		}
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets SHOPCTL_* variables override file values. Useful for CI
// and for pointing a single invocation at another backend.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SHOPCTL_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("SHOPCTL_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("SHOPCTL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func validate(cfg *Config) error {
	if cfg.APIURL == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "api_url must not be empty")
	}
	if cfg.PageSize < 1 {
		return errors.New(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("page_size must be at least 1, got %d", cfg.PageSize))
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("invalid locale %q", cfg.Locale), err)
	}
	return nil
}

// LanguageTag parses the configured locale. Load has already validated
// it, so parse failures here fall back to pt-BR.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.MustParse("pt-BR")
	}
	return tag
}
