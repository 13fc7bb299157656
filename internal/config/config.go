package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scoping selects how closures resolve free variables.
type Scoping string

const (
	// ScopingLexical roots a call frame at the scope where the lambda was
	// evaluated.
	ScopingLexical Scoping = "lexical"
	// ScopingDynamic roots a call frame at the caller's current scope.
	ScopingDynamic Scoping = "dynamic"
)

// ColorMode controls ANSI colouring of REPL output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config represents the lispy.yaml configuration.
type Config struct {
	// Prompt printed before each REPL line.
	Prompt string `yaml:"prompt"`

	// Scoping is "lexical" (default) or "dynamic".
	Scoping Scoping `yaml:"scoping"`

	// Color is "auto" (default), "always" or "never".
	Color ColorMode `yaml:"color"`

	// History is the liner history file. A leading ~ expands to the home
	// directory. Empty disables history.
	History string `yaml:"history"`

	// Transcript is the path of a sqlite database recording every REPL
	// input and its outcome. Empty disables recording.
	Transcript string `yaml:"transcript"`

	// ShowTree prints the surface tree of every input before evaluating it.
	ShowTree bool `yaml:"show_tree"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Prompt:  DefaultPrompt,
		Scoping: ScopingLexical,
		Color:   ColorAuto,
		History: "~/.lispy_history",
	}
}

// Load reads and validates a config file. Missing fields keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data on top of Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find looks for lispy.yaml in dir. It returns "" when there is none.
func Find(dir string) string {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	var errs []error
	switch c.Scoping {
	case ScopingLexical, ScopingDynamic:
	default:
		errs = append(errs, fmt.Errorf("scoping: unknown mode %q (want %q or %q)", c.Scoping, ScopingLexical, ScopingDynamic))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color: unknown mode %q", c.Color))
	}
	return errors.Join(errs...)
}

// HistoryPath returns History with ~ expanded.
func (c *Config) HistoryPath() string {
	if c.History == "" {
		return ""
	}
	if c.History == "~" || strings.HasPrefix(c.History, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, strings.TrimPrefix(c.History, "~"))
	}
	return c.History
}
