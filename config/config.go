// Package config loads labeledit configuration.
//
// Configuration comes from a single YAML file named by the --config flag or
// the LABELEDIT_CONFIG environment variable. Without either, Default() is
// used unchanged. Values in the file are merged over the defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config path.
const EnvVar = "LABELEDIT_CONFIG"

// Config is the labeledit configuration.
type Config struct {
	// ReadOnly opens every diagram in read-only mode.
	ReadOnly bool `yaml:"read_only"`

	// History is the undo depth.
	History int `yaml:"history"`

	Log   LogConfig   `yaml:"log"`
	Theme ThemeConfig `yaml:"theme"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// File receives log output. Empty means stderr for batch commands
	// and nowhere for the interactive editor.
	File string `yaml:"file"`

	// Format is text or json.
	Format string `yaml:"format"`
}

// ThemeConfig holds colors by name ("red", "navy") or hex ("#ff8800").
type ThemeConfig struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Header     string `yaml:"header"`
	Selected   string `yaml:"selected"`
	Editing    string `yaml:"editing"`
	Status     string `yaml:"status"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		History: 50,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Theme: ThemeConfig{
			Foreground: "white",
			Background: "black",
			Header:     "yellow",
			Selected:   "aqua",
			Editing:    "lime",
			Status:     "silver",
		},
	}
}

// Load loads the file named by LABELEDIT_CONFIG, or returns Default() when
// the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if c.History < 1 {
		errs = append(errs, fmt.Errorf("history must be at least 1, got %d", c.History))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	for name, value := range map[string]string{
		"foreground": c.Theme.Foreground,
		"background": c.Theme.Background,
		"header":     c.Theme.Header,
		"selected":   c.Theme.Selected,
		"editing":    c.Theme.Editing,
		"status":     c.Theme.Status,
	} {
		if value != "" && tcell.GetColor(value) == tcell.ColorDefault {
			errs = append(errs, fmt.Errorf("theme.%s: unknown color %q", name, value))
		}
	}
	return errors.Join(errs...)
}

// ParseLevel converts a level name into a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// NewLogger builds the logger described by c.Log. When no file is
// configured, output goes to fallback; a nil fallback discards it. The
// returned close function releases the log file.
func (c *Config) NewLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	closeFn := func() error { return nil }
	if c.Log.File != "" {
		f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if c.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), closeFn, nil
}
