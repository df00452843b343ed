// Package config loads application settings.
//
// Precedence (highest to lowest): explicitly set flags > ROSTER_* environment
// variables > roster.yaml > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileName is the config file looked up in the working directory.
const FileName = "roster.yaml"

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ROSTER_"

// Defaults
const (
	DefaultDatabasePath = "./data/people.db"
	DefaultLogLevel     = "info"
	DefaultWindowWidth  = 600
	DefaultWindowHeight = 400
)

// Config holds the application settings.
type Config struct {
	// DatabasePath is the SQLite file holding the people table.
	DatabasePath string `koanf:"database_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsFile, when set, receives the Prometheus metrics on exit.
	MetricsFile string `koanf:"metrics_file"`

	// WindowWidth and WindowHeight size the main window.
	WindowWidth  int `koanf:"window_width"`
	WindowHeight int `koanf:"window_height"`
}

// Load reads the configuration. cfgFile may be empty, in which case
// roster.yaml is used if it exists. flags may be nil; only flags the user
// actually set override other sources, with kebab-case names mapped to
// snake_case keys (--database-path -> database_path).
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"database_path": DefaultDatabasePath,
		"log_level":     DefaultLogLevel,
		"metrics_file":  "",
		"window_width":  DefaultWindowWidth,
		"window_height": DefaultWindowHeight,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	path, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// 3. Environment: ROSTER_DATABASE_PATH -> database_path
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings that have no usable fallback.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return errors.New("database_path must not be empty")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// findConfigFile returns the file to load: the explicit path (which must
// exist), else roster.yaml in the working directory if present, else "".
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}
	return "", nil
}
