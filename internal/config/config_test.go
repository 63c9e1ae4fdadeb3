package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Storage.Persist)
	assert.Empty(t, cfg.Storage.Path)
	assert.Equal(t, 30*time.Second, cfg.Storage.AutosaveInterval.Duration())
	assert.True(t, cfg.TUI.AltScreen)
	assert.True(t, cfg.TUI.ShowHelp)
	assert.Empty(t, cfg.Theme.File)
	assert.False(t, cfg.Theme.Watch)
	assert.Empty(t, cfg.Clipboard.Command)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[storage]
persist = false
path = "/tmp/state.json"
autosave_interval = "1m"

[tui]
alt_screen = false
show_help = false

[theme]
file = "/tmp/theme.toml"
watch = true

[clipboard]
command = "xclip"

[log]
level = "debug"
file = "/tmp/themedit.log"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.Storage.Persist)
	assert.Equal(t, "/tmp/state.json", cfg.Storage.Path)
	assert.Equal(t, time.Minute, cfg.Storage.AutosaveInterval.Duration())
	assert.False(t, cfg.TUI.AltScreen)
	assert.False(t, cfg.TUI.ShowHelp)
	assert.Equal(t, "/tmp/theme.toml", cfg.Theme.File)
	assert.True(t, cfg.Theme.Watch)
	assert.Equal(t, "xclip", cfg.Clipboard.Command)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "/tmp/themedit.log", cfg.Log.File)
	assert.Equal(t, "/tmp/state.json", cfg.StatePath())
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[tui]
show_help = false
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Changed field
	assert.False(t, cfg.TUI.ShowHelp)

	// Unchanged fields should have defaults
	assert.True(t, cfg.TUI.AltScreen)
	assert.True(t, cfg.Storage.Persist)
	assert.Equal(t, DefaultAutosaveInterval, cfg.Storage.AutosaveInterval.Duration())
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `this is not valid toml [`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad duration", "[storage]\nautosave_interval = \"soon\"\n"},
		{"short autosave", "[storage]\nautosave_interval = \"10ms\"\n"},
		{"bad log level", "[log]\nlevel = \"loud\"\n"},
		{"watch without file", "[theme]\nwatch = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[theme]\nfile = \"~/mytheme.toml\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "mytheme.toml"), cfg.Theme.File)
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"30s", 30 * time.Second, false},
		{"1h30m", 90 * time.Minute, false},
		{"1500", 1500 * time.Millisecond, false},
		{"0", 0, false},
		{"later", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Duration())
		})
	}
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Storage.AutosaveInterval = Duration(2 * time.Minute)
	cfg.Clipboard.Command = "wl-copy"

	err := cfg.Save(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, loaded.Storage.AutosaveInterval.Duration())
	assert.Equal(t, "wl-copy", loaded.Clipboard.Command)
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, LogConfig{Level: tt.level}.SlogLevel())
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/themedit/config.toml", ConfigPath())
	assert.Equal(t, "/custom/config/themedit/themes", ThemesDir())
}

func TestConfigPathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	path := ConfigPath()
	assert.Contains(t, path, "themedit/config.toml")
}

func TestDataPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, "/custom/data/themedit", DataPath())
	assert.Equal(t, "/custom/data/themedit/app.json", DefaultConfig().StatePath())
	assert.Equal(t, "/custom/data/themedit/themedit.log", DefaultConfig().LogPath())

	c := DefaultConfig()
	c.Log.File = "/var/log/te.log"
	assert.Equal(t, "/var/log/te.log", c.LogPath())
}

func TestEnsureDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	require.NoError(t, EnsureDataDir())

	info, err := os.Stat(filepath.Join(dir, "themedit"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
