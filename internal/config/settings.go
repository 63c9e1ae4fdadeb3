package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Supports formats like "5s", "1m", "1h30m", or integer milliseconds.
// A value of "0" or 0 disables the feature it configures.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	// Plain integers are milliseconds
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '5s', '1m', '1h30m' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// ValidLogLevels lists the accepted [log] level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// SlogLevel converts the configured level name.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.AutosaveInterval < 0 {
		return fmt.Errorf("autosave_interval must not be negative, got %s",
			c.Storage.AutosaveInterval.Duration())
	}
	if c.Storage.AutosaveInterval > 0 && c.Storage.AutosaveInterval.Duration() < time.Second {
		return fmt.Errorf("autosave_interval must be at least 1s, got %s",
			c.Storage.AutosaveInterval.Duration())
	}

	validLevel := false
	for _, l := range ValidLogLevels() {
		if strings.EqualFold(c.Log.Level, l) {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level %q, must be one of: %v", c.Log.Level, ValidLogLevels())
	}

	if c.Theme.Watch && c.Theme.File == "" {
		return fmt.Errorf("theme.watch requires theme.file")
	}

	return nil
}

// Expand resolves ~ in the path settings.
func (c *Config) Expand() {
	c.Storage.Path = expandPath(c.Storage.Path)
	c.Theme.File = expandPath(c.Theme.File)
	c.Log.File = expandPath(c.Log.File)
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
