package theme

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/themedit/internal/visuals"
)

// ErrThemeNotFound is returned when no preset has the requested name.
var ErrThemeNotFound = errors.New("theme not found")

// Loader resolves preset names against the user themes directory and the
// bundled presets.
type Loader struct {
	logger    *slog.Logger
	themesDir string
}

// NewLoader creates a new preset loader for themesDir.
// An empty themesDir disables user presets.
func NewLoader(themesDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:    logger,
		themesDir: themesDir,
	}
}

// ThemesDir returns the user themes directory.
func (l *Loader) ThemesDir() string {
	return l.themesDir
}

// Load loads a preset by name.
// Resolution order:
//  1. User themes directory (<themesDir>/<name>.toml)
//  2. Bundled presets
//
// This allows users to override bundled presets by placing a file with the
// same name in their themes directory.
func (l *Loader) Load(name string) (*Preset, error) {
	if name == "" {
		name = DefaultThemeName
	}

	if l.themesDir != "" && validName(name) {
		path := filepath.Join(l.themesDir, name+".toml")
		if _, err := os.Stat(path); err == nil {
			p, err := LoadFile(path)
			if err != nil {
				l.logger.Warn("failed to load user theme, trying bundled", "theme", name, "error", err)
			} else {
				l.logger.Debug("loaded user theme", "name", name, "path", path)
				return p, nil
			}
		}
	}

	if p, found := Bundled(name); found {
		l.logger.Debug("loaded bundled theme", "name", name)
		return p, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
}

// Save writes v as a user preset named name and returns its path.
func (l *Loader) Save(name string, v visuals.Visuals) (string, error) {
	if l.themesDir == "" {
		return "", errors.New("no themes directory configured")
	}
	if !validName(name) {
		return "", fmt.Errorf("invalid theme name %q", name)
	}

	path := filepath.Join(l.themesDir, name+".toml")
	if err := SaveFile(path, v); err != nil {
		return "", err
	}
	l.logger.Info("saved user theme", "name", name, "path", path)
	return path, nil
}

// List returns every available preset name: built-in first, then embedded,
// then user presets not shadowing a bundled name.
func (l *Loader) List() []Preset {
	seen := make(map[string]bool)
	var presets []Preset

	add := func(p Preset) {
		if seen[p.Name] {
			return
		}
		seen[p.Name] = true
		presets = append(presets, p)
	}

	for _, name := range BuiltinThemes {
		add(Preset{Name: name, IsBundled: true})
	}
	for _, name := range ListEmbeddedThemes() {
		add(Preset{Name: name, IsBundled: true})
	}

	if l.themesDir == "" {
		return presets
	}

	entries, err := os.ReadDir(l.themesDir)
	if err != nil {
		if !os.IsNotExist(err) {
			l.logger.Debug("failed to read themes directory", "error", err)
		}
		return presets
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".toml" {
			continue
		}
		themeName := strings.TrimSuffix(name, ".toml")
		if seen[themeName] {
			// A user file overriding a bundled preset keeps the bundled slot
			// but points at the file.
			for i := range presets {
				if presets[i].Name == themeName {
					presets[i].Path = filepath.Join(l.themesDir, name)
					presets[i].IsBundled = false
				}
			}
			continue
		}
		add(Preset{Name: themeName, Path: filepath.Join(l.themesDir, name)})
	}

	return presets
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
