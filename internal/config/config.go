// Package config loads tunable progression constants from an optional YAML
// file. A missing file yields defaults; a malformed file is an error so a
// typo never silently zeroes the decay penalty.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the progression tunables.
type Config struct {
	// PerDayPenalty is the XP lost per fully missed day.
	PerDayPenalty int `yaml:"per_day_penalty"`
	// BaseAward is the flat XP granted for any completed assessment.
	BaseAward int `yaml:"base_award"`
	// PerPointAward is the XP granted per total-score point above the
	// minimum possible total.
	PerPointAward int `yaml:"per_point_award"`
}

// Default returns the built-in tunables.
func Default() Config {
	return Config{
		PerDayPenalty: 15,
		BaseAward:     50,
		PerPointAward: 5,
	}
}

// DefaultPath resolves the config file location:
// $NEUROFORGE_CONFIG, then $XDG_CONFIG_HOME/neuroforge/config.yaml,
// then ~/.config/neuroforge/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("NEUROFORGE_CONFIG"); p != "" {
		return p, nil
	}

	cfgHome := os.Getenv("XDG_CONFIG_HOME")
	if cfgHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		cfgHome = filepath.Join(home, ".config")
	}
	return filepath.Join(cfgHome, "neuroforge", "config.yaml"), nil
}

// Load reads the config at path, overlaying values onto the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.PerDayPenalty < 0 {
		cfg.PerDayPenalty = 0
	}
	if cfg.BaseAward < 0 {
		cfg.BaseAward = 0
	}
	if cfg.PerPointAward < 0 {
		cfg.PerPointAward = 0
	}
	return cfg, nil
}
