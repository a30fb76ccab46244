package cliconfig

import "os"

// ApplyEnvConfig applies LUHN_* environment variables to cfg.
// They override file config but never an explicitly changed flag.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("scheme", os.Getenv("LUHN_SCHEME"), &cfg.Scheme)
	s.setString("skip", os.Getenv("LUHN_SKIP"), &cfg.Skip)
	s.setString("log-level", os.Getenv("LUHN_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("append", os.Getenv("LUHN_APPEND"), &cfg.Append)
}
