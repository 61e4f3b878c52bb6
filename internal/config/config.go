// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config resolves runtime settings from a config file, the
// LIBRIS_* environment, and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	// DataDir holds the database and any generated files.
	DataDir string `mapstructure:"data_dir"`
	// Storage selects the KV backend, "sqlite" or "memory".
	Storage string `mapstructure:"storage"`
	// SeedFile optionally overrides the built-in starter catalog.
	SeedFile string `mapstructure:"seed_file"`
	// FetchLatency is the simulated delay of the initial catalog fetch.
	FetchLatency time.Duration `mapstructure:"fetch_latency"`
	// FetchFailure, when non-empty, makes the initial fetch fail with
	// this message. Useful for exercising the failed-load path.
	FetchFailure string `mapstructure:"fetch_failure"`
}

// DBPath is where the SQLite backend keeps its database.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "libris.db")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".libris"
	}
	return filepath.Join(home, ".libris")
}

// Load reads configuration. An explicit path must exist; otherwise
// config.yaml is looked up in the data dir and the current directory,
// and a missing file just means defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("storage", "sqlite")
	v.SetDefault("seed_file", "")
	v.SetDefault("fetch_latency", 800*time.Millisecond)
	v.SetDefault("fetch_failure", "")

	v.SetEnvPrefix("LIBRIS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultDataDir())
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Storage != "sqlite" && cfg.Storage != "memory" {
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
	return cfg, nil
}
