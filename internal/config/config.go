// Package config provides file- and environment-based configuration for
// the grafo terminal tool.
//
// Settings live in a TOML file (default ~/.grafo/config.toml); the
// GRAFO_CONFIG environment variable overrides the path. A missing file
// yields the defaults.
//
// TOML format:
//
//	precision = 4
//	directed = false
//	accent_color = "6"
//
//	[log]
//	level = "info"
//	format = "text"
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the tool configuration.
type Config struct {
	// Precision is the number of fractional digits used when printing
	// weights and distances.
	Precision int `toml:"precision"`

	// Directed sets the mode of graphs created without an explicit
	// directed/undirected argument.
	Directed bool `toml:"directed"`

	// AccentColor is the ANSI color used for highlighted output.
	AccentColor string `toml:"accent_color"`

	Log LogConfig `toml:"log"`
}

// LogConfig selects the logger's verbosity and output format.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Precision:   4,
		Directed:    false,
		AccentColor: "6",
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

// DefaultPath returns the default config file path (~/.grafo/config.toml),
// or "" when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".grafo", "config.toml")
}

// Load reads the configuration from path. When path is empty the
// GRAFO_CONFIG environment variable is consulted, then DefaultPath.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv("GRAFO_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read config file %q: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %q: %w", path, err)
	}
	if cfg.Precision < 0 {
		cfg.Precision = 0
	}

	return cfg, nil
}
