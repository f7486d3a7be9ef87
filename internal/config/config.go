// Package config loads the adapter's process-wide configuration from the
// environment, per spec.md §6.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is read once at startup
// and never mutated afterward (spec.md §5, "Shared resources").
type Config struct {
	API struct {
		BaseURL string `mapstructure:"base_url"`
		Token   string `mapstructure:"token"`
	} `mapstructure:"api"`
	Permissions string `mapstructure:"permissions"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Load reads TRILIUM_API_URL, TRILIUM_API_TOKEN, PERMISSIONS and VERBOSE
// from the environment, applying the defaults spec.md §6 prescribes.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://localhost:8080/etapi")
	v.SetDefault("permissions", "READ;WRITE")
	v.SetDefault("verbose", false)

	if err := v.BindEnv("api.base_url", "TRILIUM_API_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind TRILIUM_API_URL: %w", err)
	}
	if err := v.BindEnv("api.token", "TRILIUM_API_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind TRILIUM_API_TOKEN: %w", err)
	}
	if err := v.BindEnv("permissions", "PERMISSIONS"); err != nil {
		return nil, fmt.Errorf("failed to bind PERMISSIONS: %w", err)
	}
	if err := v.BindEnv("verbose", "VERBOSE"); err != nil {
		return nil, fmt.Errorf("failed to bind VERBOSE: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.API.Token == "" {
		return nil, fmt.Errorf("TRILIUM_API_TOKEN is required")
	}

	return &cfg, nil
}
