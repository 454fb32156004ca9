// Package config resolves runtime settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowWidth  = 420
	DefaultWindowHeight = 590
	MinWindowWidth      = 420
	MinWindowHeight     = 200
)

type Config struct {
	LogLevel     string  `yaml:"log_level"`
	JSONLogs     bool    `yaml:"json_logs"`
	WindowWidth  float32 `yaml:"window_width"`
	WindowHeight float32 `yaml:"window_height"`
	WatchFiles   bool    `yaml:"watch_files"`
}

func Default() Config {
	return Config{
		LogLevel:     "info",
		JSONLogs:     false,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		WatchFiles:   true,
	}
}

// DefaultPath returns the per-user config file location. It is empty when
// the platform has no user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mindnote", "config.yaml")
}

// Load layers the YAML file at path (if it exists) and the environment over
// the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	cfg.normalize()
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if level := os.Getenv("MINDNOTE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	} else if os.Getenv("MINDNOTE_DEBUG") == "1" {
		cfg.LogLevel = "debug"
	}

	if os.Getenv("MINDNOTE_JSON_LOGS") == "true" {
		cfg.JSONLogs = true
	}

	if os.Getenv("MINDNOTE_WATCH") == "false" {
		cfg.WatchFiles = false
	}
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.WindowWidth < MinWindowWidth {
		c.WindowWidth = MinWindowWidth
	}
	if c.WindowHeight < MinWindowHeight {
		c.WindowHeight = MinWindowHeight
	}
}
