package cliconfig

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/luhn/internal/checker"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "decimal", cfg.Scheme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Skip)
	assert.False(t, cfg.Append)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "alphanum", cfg: Config{Scheme: "alphanum", LogLevel: "debug"}},
		{name: "base36 uppercase", cfg: Config{Scheme: "BASE36", LogLevel: "warn"}},
		{name: "empty level is allowed", cfg: Config{Scheme: "decimal"}},
		{name: "unknown scheme", cfg: Config{Scheme: "isin", LogLevel: "info"}, wantErr: true},
		{name: "empty scheme", cfg: Config{LogLevel: "info"}, wantErr: true},
		{name: "bad level", cfg: Config{Scheme: "decimal", LogLevel: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Level(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, (&Config{LogLevel: "debug"}).Level())
	assert.Equal(t, zerolog.InfoLevel, (&Config{}).Level())
	assert.Equal(t, zerolog.InfoLevel, (&Config{LogLevel: "nope"}).Level())
}

func TestConfig_Checker(t *testing.T) {
	cfg := Config{Scheme: "decimal", Skip: " "}
	c, err := cfg.Checker(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, checker.Decimal, c.Scheme())
	assert.True(t, c.Validate("4111 1111 1111 1111").Valid)

	cfg = Config{Scheme: "decimal", Skip: "0"}
	_, err = cfg.Checker(zerolog.Nop())
	assert.ErrorIs(t, err, checker.ErrSkipOverlap)

	cfg = Config{Scheme: "nope"}
	_, err = cfg.Checker(zerolog.Nop())
	assert.ErrorIs(t, err, checker.ErrUnknownScheme)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, zerolog.WarnLevel)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
