// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, merging, and persistence
// helpers for Cronlens. It uses Viper for file/env/flag parsing and exposes
// utility functions to read/write configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration persisted in cronlens.yaml.
type Config struct {
	// Language selects the locale for descriptions and the UI ("en", "de").
	Language string `mapstructure:"language" yaml:"language"`
	// Count is the default number of upcoming runs to compute.
	Count int `mapstructure:"count" yaml:"count"`
	// History configures the evaluation history store.
	History HistoryConfig `mapstructure:"history" yaml:"history"`
}

// HistoryConfig configures the local SQLite store of evaluated expressions.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Dsn     string `mapstructure:"dsn" yaml:"dsn"`
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Cronlens")
		default: // Linux, macOS, etc.
			configDir = "/etc/cronlens"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "cronlens")
	}

	return filepath.Join(configDir, "cronlens.yaml"), nil
}

// DefaultHistoryDsn returns the path of the history database next to the
// user configuration file.
func DefaultHistoryDsn() string {
	path, err := getConfigPath(false)
	if err != nil {
		return "./cronlens-history.db"
	}
	return filepath.Join(filepath.Dir(path), "history.db")
}

// LoadConfig resolves the configuration from defaults, config files,
// CRONLENS_* environment variables and bound cobra flags, in ascending
// precedence.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("cronlens")
	v.SetConfigType("yaml")

	// 3. Add explicit config file path if provided via --config flag.
	// This has the highest precedence for file-based configuration.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // Look for cronlens.yaml in current dir

	// 5. Read in the primary config file. A missing file is not fatal:
	// resolution continues on defaults/env/flags and the not-found error is
	// handed back at the end so the caller can write a starter file.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			notFound = err
		} else {
			return c, err
		}
	}

	// 6. Read from environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("cronlens")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. Bind CLI flags
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	// parse config
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile persists the configuration as YAML to the user or system
// config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
