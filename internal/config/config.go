// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads the optional umaskexec configuration file.
//
// Example:
//
//	symbolic = true
//	log_level = "info"
//
//	[presets]
//	private = "077"
//	shared = "u=rwx,g=rwx,o=rx"
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/janderssonse/umaskexec/internal/mask"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// PresetPrefix marks a mask argument as a preset reference, as in "@private".
// It cannot start a valid mask expression.
const PresetPrefix = "@"

// DefaultLogLevel is used when neither the file nor a flag sets one.
const DefaultLogLevel = "warn"

var (
	// ErrUnknownPreset is returned when a preset reference has no definition.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidPreset is returned when a preset has a bad name or expression.
	ErrInvalidPreset = errors.New("invalid preset")
	// ErrInvalidLogLevel is returned for log levels logrus does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")

	presetNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

// Config is the decoded configuration file.
type Config struct {
	// Symbolic selects symbolic output by default.
	Symbolic bool `toml:"symbolic"`
	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`
	// Presets maps names to mask expressions.
	Presets map[string]string `toml:"presets"`

	path string
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Presets:  map[string]string{},
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	file, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.path = path

	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields Default.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debugf("no config file at %s, using defaults", path)
		return Default(), nil
	}

	return cfg, err
}

// Decode reads TOML from r and validates it.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Presets == nil {
		cfg.Presets = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the log level and every preset.
func (c *Config) Validate() error {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	for _, name := range c.PresetNames() {
		if !presetNamePattern.MatchString(name) {
			return fmt.Errorf("%w: bad name %q", ErrInvalidPreset, name)
		}

		if err := mask.Validate(c.Presets[name]); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidPreset, name, err)
		}
	}

	return nil
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Resolve expands a "@name" preset reference. Other arguments are returned
// unchanged.
func (c *Config) Resolve(arg string) (string, error) {
	name, isPreset := strings.CutPrefix(arg, PresetPrefix)
	if !isPreset {
		return arg, nil
	}

	expr, ok := c.Presets[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}

	logrus.Debugf("preset %s expands to %s", name, expr)

	return expr, nil
}
