package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themedit/internal/visuals"
)

func TestListEmbeddedThemes(t *testing.T) {
	themes := ListEmbeddedThemes()

	assert.Contains(t, themes, "catppuccin-mocha")
	assert.Contains(t, themes, "solarized-light")
	assert.IsIncreasing(t, themes)
}

func TestGetEmbeddedTheme(t *testing.T) {
	data, found := GetEmbeddedTheme("catppuccin-mocha")
	require.True(t, found)
	assert.Contains(t, string(data), "hyperlink_color")

	_, found = GetEmbeddedTheme("nonexistent")
	assert.False(t, found)

	_, found = GetEmbeddedTheme("../themes/catppuccin-mocha")
	assert.False(t, found)
}

func TestIsBundledTheme(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"dark", true},
		{"light", true},
		{"catppuccin-mocha", true},
		{"solarized-light", true},
		{"nonexistent", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBundledTheme(tt.name))
		})
	}
}

func TestBundledThemes_Decode(t *testing.T) {
	for _, name := range ListEmbeddedThemes() {
		t.Run(name, func(t *testing.T) {
			p, found := Bundled(name)
			require.True(t, found)
			assert.True(t, p.IsBundled)
			assert.NotEqual(t, visuals.Dark(), p.Visuals)
			assert.NotEqual(t, visuals.Light(), p.Visuals)
		})
	}
}

func TestBundled_Builtins(t *testing.T) {
	p, found := Bundled("dark")
	require.True(t, found)
	assert.Equal(t, visuals.Dark(), p.Visuals)

	p, found = Bundled("light")
	require.True(t, found)
	assert.Equal(t, visuals.Light(), p.Visuals)
}

func TestDecode_PartialUsesMatchingBase(t *testing.T) {
	dark, err := Decode([]byte(`panel_fill = "#010203ff"`))
	require.NoError(t, err)
	expected := visuals.Dark()
	expected.PanelFill = visuals.Color{R: 1, G: 2, B: 3, A: 255}
	assert.Equal(t, expected, dark)

	light, err := Decode([]byte("dark_mode = false\n"))
	require.NoError(t, err)
	assert.Equal(t, visuals.Light(), light)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte(`panel_fill = "not a colour"`))
	assert.Error(t, err)

	_, err = Decode([]byte(`this is [ not toml`))
	assert.Error(t, err)
}

func TestDecode_RejectsNonFiniteFloats(t *testing.T) {
	for _, doc := range []string{
		"[window_stroke]\nwidth = nan\n",
		"window_rounding = -nan\n",
		"[widgets.hovered]\nexpansion = inf\n",
	} {
		_, err := Decode([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	v := visuals.Light()
	v.HyperlinkColor = visuals.Color{R: 10, G: 20, B: 30, A: 40}
	v.Widgets.Active.FgStroke.Width = 3.5

	data, err := Encode(v)
	require.NoError(t, err)

	out, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, v, out)
}

func TestLoader_UserOverridesBundled(t *testing.T) {
	dir := t.TempDir()
	custom := visuals.Dark()
	custom.PanelFill = visuals.RGB(1, 1, 1)
	require.NoError(t, SaveFile(filepath.Join(dir, "light.toml"), custom))

	l := NewLoader(dir, nil)

	p, err := l.Load("light")
	require.NoError(t, err)
	assert.False(t, p.IsBundled)
	assert.Equal(t, filepath.Join(dir, "light.toml"), p.Path)
	assert.Equal(t, custom, p.Visuals)
}

func TestLoader_FallsBackToBundledOnBadUserFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dark.toml"), []byte("[[[ broken"), 0644))

	p, err := NewLoader(dir, nil).Load("dark")
	require.NoError(t, err)
	assert.True(t, p.IsBundled)
	assert.Equal(t, visuals.Dark(), p.Visuals)
}

func TestLoader_NotFound(t *testing.T) {
	_, err := NewLoader(t.TempDir(), nil).Load("nope")
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestLoader_EmptyNameIsDefault(t *testing.T) {
	p, err := NewLoader("", nil).Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeName, p.Name)
	assert.Equal(t, visuals.Dark(), p.Visuals)
}

func TestLoader_SaveAndList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	l := NewLoader(dir, nil)

	path, err := l.Save("mine", visuals.Light())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mine.toml"), path)

	_, err = l.Save("../escape", visuals.Light())
	assert.Error(t, err)

	var names []string
	for _, p := range l.List() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"dark", "light", "catppuccin-mocha", "solarized-light", "mine"}, names)

	loaded, err := l.Load("mine")
	require.NoError(t, err)
	assert.Equal(t, visuals.Light(), loaded.Visuals)
}

func TestLoader_ListMarksOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveFile(filepath.Join(dir, "dark.toml"), visuals.Dark()))

	list := NewLoader(dir, nil).List()
	require.NotEmpty(t, list)
	assert.Equal(t, "dark", list[0].Name)
	assert.False(t, list[0].IsBundled)
	assert.Equal(t, filepath.Join(dir, "dark.toml"), list[0].Path)
	assert.Equal(t, filepath.Join(dir, "dark.toml")+" (overrides bundled)", list[0].Source())
}

func TestPreset_Source(t *testing.T) {
	assert.Equal(t, "bundled", Preset{Name: "light", IsBundled: true}.Source())
	assert.Equal(t, "/t/mine.toml", Preset{Name: "mine", Path: "/t/mine.toml"}.Source())
	assert.Equal(t, "/t/light.toml (overrides bundled)",
		Preset{Name: "light", Path: "/t/light.toml"}.Source())
}

func TestLoader_SaveWithoutDir(t *testing.T) {
	_, err := NewLoader("", nil).Save("x", visuals.Dark())
	assert.Error(t, err)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.toml")
	require.NoError(t, SaveFile(path, visuals.Dark()))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)

	changes := make(chan *Preset, 4)
	w.SetChangeCallback(func(p *Preset) { changes <- p })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	assert.True(t, w.IsRunning())

	updated := visuals.Dark()
	updated.PanelFill = visuals.RGB(200, 100, 50)
	require.NoError(t, SaveFile(path, updated))

	select {
	case p := <-changes:
		assert.Equal(t, "live", p.Name)
		assert.Equal(t, updated, p.Visuals)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	require.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
}

func TestWatcher_ReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.toml")
	require.NoError(t, SaveFile(path, visuals.Dark()))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)

	errs := make(chan error, 4)
	w.SetErrorCallback(func(err error) { errs <- err })

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("panel_fill = 12"), 0644))

	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}
