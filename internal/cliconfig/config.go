package cliconfig

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/luhn/internal/checker"
)

// Config holds CLI configuration for luhn.
type Config struct {
	// Scheme is one of checker.Schemes.
	Scheme string
	// Skip lists bytes ignored anywhere in the input, e.g. " -".
	Skip string
	// Append prints the completed number instead of the bare check digit.
	Append   bool
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Scheme:   "decimal",
		LogLevel: zerolog.LevelInfoValue,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := checker.ParseScheme(c.Scheme); err != nil {
		return fmt.Errorf("scheme: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return lvl
}

// Checker builds a checker.Checker from the configuration.
func (c *Config) Checker(log zerolog.Logger) (*checker.Checker, error) {
	scheme, err := checker.ParseScheme(c.Scheme)
	if err != nil {
		return nil, err
	}

	return checker.New(scheme, checker.WithSkip(c.Skip), checker.WithLogger(log))
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
