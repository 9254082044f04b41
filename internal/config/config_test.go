package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muratgu/hilbert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hilbert.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "level: 3\nformat: cbor\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Level)
	assert.Equal(t, FormatCBOR, cfg.Format)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, Default().Workers, cfg.Workers, "absent keys keep defaults")
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative level", "level: -1\n"},
		{"level too deep", "level: 40\n"},
		{"negative workers", "workers: -2\n"},
		{"unknown format", "format: png\n"},
		{"unknown log level", "log_level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadLevelErrorKeepsInvalidInput(t *testing.T) {
	_, err := Load(writeConfig(t, "level: -1\n"))
	require.ErrorIs(t, err, hilbert.ErrInvalidInput)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "level: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLogLevel("verbose")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
