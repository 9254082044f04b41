package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muratgu/hilbert"
)

// Output formats for the enumerate command.
const (
	FormatText = "text"
	FormatCBOR = "cbor"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config holds the defaults used by the hilbert command. Command line flags
// override these values.
type Config struct {
	Level    int    `yaml:"level"`
	Workers  int    `yaml:"workers"` // 0 means GOMAXPROCS
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		Level:    6,
		Workers:  0,
		Format:   FormatText,
		LogLevel: "info",
	}
}

// Load loads config from a YAML file. If the file doesn't exist, returns
// defaults. Keys absent from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if err := hilbert.CheckLevel(c.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	}
	switch c.Format {
	case FormatText, FormatCBOR:
	default:
		return fmt.Errorf("%w: format %q, want %q or %q", ErrInvalidConfig, c.Format, FormatText, FormatCBOR)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the slog level for LogLevel, info if it is not valid.
func (c Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
}
