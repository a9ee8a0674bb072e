// Package config loads the gst configuration from ~/.config/gst/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the gst configuration.
type Config struct {
	// CacheDir overrides where record slots are stored. Empty means each
	// repository's record lives inside its own git dir.
	CacheDir string `toml:"cache_dir"`
	// Untracked is the default untracked reporting mode: "no", "normal" or "all".
	Untracked string `toml:"untracked"`
	// ShowIgnored reports ignored paths by default.
	ShowIgnored bool `toml:"show_ignored"`
	// AheadBehind computes ahead/behind counts on live scans. Turning it
	// off never affects counts already stored in a record: cached branch
	// metadata is returned verbatim.
	AheadBehind bool `toml:"ahead_behind"`
	// Color controls styled output: "auto", "always" or "never".
	Color string `toml:"color"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Untracked:   "normal",
		AheadBehind: true,
		Color:       "auto",
	}
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns error if path is relative (like "." or "..").
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gst", "config.toml"), nil
}

// Load reads config from ~/.config/gst/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	// Expand ~ in cache_dir (shell doesn't expand in config files)
	if cfg.CacheDir != "" {
		expanded, err := expandPath(cfg.CacheDir)
		if err != nil {
			return Default(), fmt.Errorf("expand cache_dir: %w", err)
		}
		cfg.CacheDir = expanded
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if err := ValidatePath(c.CacheDir, "cache_dir"); err != nil {
		return err
	}

	switch c.Untracked {
	case "", "no", "none", "normal", "all":
	default:
		return fmt.Errorf("invalid untracked %q: must be \"no\", \"normal\" or \"all\"", c.Untracked)
	}

	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: must be \"auto\", \"always\" or \"never\"", c.Color)
	}

	return nil
}
