// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultAutosaveInterval = 30 * time.Second
	DefaultLogLevel         = "warn"
)

// Config represents the themedit configuration.
type Config struct {
	Storage   StorageConfig   `toml:"storage"`
	TUI       TUIConfig       `toml:"tui"`
	Theme     ThemeConfig     `toml:"theme"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Log       LogConfig       `toml:"log"`
}

// StorageConfig controls where editor state is persisted.
type StorageConfig struct {
	Persist          bool     `toml:"persist"`           // false = keep state in memory only
	Path             string   `toml:"path"`              // Empty = default data path
	AutosaveInterval Duration `toml:"autosave_interval"` // 0 = only save on exit
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	AltScreen bool `toml:"alt_screen"`
	ShowHelp  bool `toml:"show_help"`
}

// ThemeConfig selects a preset file to load at start-up.
type ThemeConfig struct {
	File  string `toml:"file"`  // Preset file applied over the restored theme
	Watch bool   `toml:"watch"` // Re-apply the file whenever it changes
}

// ClipboardConfig holds clipboard settings.
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Log destination while the TUI owns the terminal; defaults to themedit.log in the data dir
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Persist:          true,
			Path:             "",
			AutosaveInterval: Duration(DefaultAutosaveInterval),
		},
		TUI: TUIConfig{
			AltScreen: true,
			ShowHelp:  true,
		},
		Theme: ThemeConfig{
			File:  "",
			Watch: false,
		},
		Clipboard: ClipboardConfig{
			Command: "", // Auto-detect
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			File:  "",
		},
	}
}

// ConfigDir returns the themedit configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "themedit")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// ThemesDir returns the directory holding user theme presets.
func ThemesDir() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "themes")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "themedit")
}

// StatePath returns the configured state file path, or the default one.
func (c *Config) StatePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(DataPath(), "app.json")
}

// LogPath returns where logs go while the TUI owns the terminal.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(DataPath(), "themedit.log")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
// Paths are ~-expanded and the result is validated.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.Expand()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	path := DataPath()
	if path == "" {
		return errors.New("unable to determine data directory")
	}
	return os.MkdirAll(path, 0755)
}
