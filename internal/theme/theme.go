package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/themedit/internal/visuals"
)

// Preset is a named theme.
type Preset struct {
	Name      string // Preset name (file name without .toml)
	Path      string // Full path to the file (empty for bundled presets)
	IsBundled bool   // True for built-in and embedded presets
	Visuals   visuals.Visuals
}

// Source describes where the preset comes from, for listings.
func (p Preset) Source() string {
	switch {
	case p.IsBundled:
		return "bundled"
	case IsBundledTheme(p.Name):
		return p.Path + " (overrides bundled)"
	default:
		return p.Path
	}
}

// Decode parses a TOML preset.
// Keys the preset omits keep the value of the built-in preset matching its
// dark_mode flag (dark when unset), so partial presets are always complete.
func Decode(data []byte) (visuals.Visuals, error) {
	var probe struct {
		DarkMode *bool `toml:"dark_mode"`
	}
	if err := toml.Unmarshal(data, &probe); err != nil {
		return visuals.Visuals{}, err
	}

	v := visuals.Dark()
	if probe.DarkMode != nil && !*probe.DarkMode {
		v = visuals.Light()
	}

	if err := toml.Unmarshal(data, &v); err != nil {
		return visuals.Visuals{}, err
	}
	if err := v.Validate(); err != nil {
		return visuals.Visuals{}, err
	}
	return v, nil
}

// Encode renders v as a TOML preset.
func Encode(v visuals.Visuals) ([]byte, error) {
	return toml.Marshal(v)
}

// LoadFile loads a preset from a TOML file.
func LoadFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	v, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &Preset{
		Name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:    path,
		Visuals: v,
	}, nil
}

// SaveFile writes v as a TOML preset, creating parent directories.
func SaveFile(path string, v visuals.Visuals) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := Encode(v)
	if err != nil {
		return err
	}

	// Write atomically so a watcher never sees a half-written preset
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// Bundled returns a built-in or embedded preset by name.
func Bundled(name string) (*Preset, bool) {
	switch name {
	case DarkThemeName:
		return &Preset{Name: name, IsBundled: true, Visuals: visuals.Dark()}, true
	case LightThemeName:
		return &Preset{Name: name, IsBundled: true, Visuals: visuals.Light()}, true
	}

	data, found := GetEmbeddedTheme(name)
	if !found {
		return nil, false
	}
	v, err := Decode(data)
	if err != nil {
		return nil, false
	}
	return &Preset{Name: name, IsBundled: true, Visuals: v}, true
}
