package appstate

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themedit/internal/storage"
	"github.com/jmylchreest/themedit/internal/visuals"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "Hello World!", s.Label)
	assert.False(t, s.Flag)
	assert.Equal(t, First, s.Selection)
	assert.Equal(t, 2.7, s.Value)
	assert.Equal(t, visuals.Dark(), s.Theme)
}

func TestRestore_Empty(t *testing.T) {
	assert.Equal(t, Default(), Restore(nil, nil))
	assert.Equal(t, Default(), Restore([]byte{}, nil))
	assert.Equal(t, Default(), Restore([]byte("  \n"), nil))
}

func TestRestore_RoundTrip(t *testing.T) {
	s := Default()
	s.Label = "round trip"
	s.Flag = true
	s.Selection = Third
	s.Value = 123.5
	s.Theme = visuals.Light()
	s.Theme.PanelFill = visuals.Color{R: 9, G: 8, B: 7, A: 6}
	s.Theme.Widgets.Hovered.BgStroke.Width = 4

	data, err := s.Marshal()
	require.NoError(t, err)

	restored := Restore(data, nil)

	expected := s.Clone()
	expected.Value = DefaultValue
	assert.Equal(t, expected, restored)
}

func TestMarshal_OmitsValue(t *testing.T) {
	s := Default()
	s.Value = 99

	data, err := s.Marshal()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.ElementsMatch(t, []string{"label", "boolean", "radio", "theme"}, keys(raw))
	assert.JSONEq(t, `"First"`, string(raw["radio"]))
}

func TestMarshal_InvalidSelection(t *testing.T) {
	s := Default()
	s.Selection = Selection(7)

	_, err := s.Marshal()
	assert.Error(t, err)

	store := storage.NewMemoryStorage()
	assert.Error(t, s.Save(store))
	_, ok := store.GetString(storage.AppKey)
	assert.False(t, ok)
}

func TestRestore_Garbage(t *testing.T) {
	inputs := [][]byte{
		[]byte("not json"),
		[]byte("{"),
		[]byte("[1,2,3]"),
		[]byte(`"a string"`),
		[]byte(`{"label": 5}`),
		[]byte(`{"boolean": "yes"}`),
		[]byte(`{"radio": "Fourth"}`),
		[]byte(`{"radio": 1}`),
		[]byte(`{"label":"kept?","theme":{"panel_fill":"red"}}`),
		{0xff, 0xfe, 0x00, 0x01},
	}

	for _, in := range inputs {
		t.Run(string(in), func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, Default(), Restore(in, nil))
			})
		})
	}
}

func TestRestore_RandomBytesNeverPanic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		buf := make([]byte, rng.Intn(64))
		rng.Read(buf)
		assert.NotPanics(t, func() {
			s := Restore(buf, nil)
			assert.True(t, s.Selection.Valid())
			assert.Equal(t, DefaultValue, s.Value)
		})
	}
}

func TestRestore_ForwardCompatible(t *testing.T) {
	// Written by an older build that only knew about the label and flag.
	old := []byte(`{"label":"from an older version","boolean":true}`)

	s := Restore(old, nil)

	assert.Equal(t, "from an older version", s.Label)
	assert.True(t, s.Flag)
	assert.Equal(t, First, s.Selection)
	assert.Equal(t, DefaultValue, s.Value)
	assert.Equal(t, visuals.Dark(), s.Theme)
}

func TestRestore_ForwardCompatibleTheme(t *testing.T) {
	old := []byte(`{"radio":"Second","theme":{"hyperlink_color":"#010203ff","widgets":{"active":{"bg_fill":"#040506ff"}}}}`)

	s := Restore(old, nil)

	expected := visuals.Dark()
	expected.HyperlinkColor = visuals.Color{R: 1, G: 2, B: 3, A: 255}
	expected.Widgets.Active.BgFill = visuals.Color{R: 4, G: 5, B: 6, A: 255}

	assert.Equal(t, Second, s.Selection)
	assert.Equal(t, DefaultLabel, s.Label)
	assert.Equal(t, expected, s.Theme)
}

func TestRestore_IgnoresPersistedValueAndUnknownKeys(t *testing.T) {
	s := Restore([]byte(`{"value": 100, "Value": 100, "future_field": [1]}`), nil)
	assert.Equal(t, Default(), s)
}

func TestEndToEnd(t *testing.T) {
	store := storage.NewMemoryStorage()

	s := Load(store, nil)
	require.Equal(t, Default(), s)

	s.Flag = true
	s.Selection = Second
	s.Label = "x"
	require.NoError(t, s.Save(store))

	restored := Load(store, nil)

	assert.True(t, restored.Flag)
	assert.Equal(t, Second, restored.Selection)
	assert.Equal(t, "x", restored.Label)
	assert.Equal(t, 2.7, restored.Value)
	assert.Equal(t, visuals.Dark(), restored.Theme)
}

func TestLoad_NilAndMissing(t *testing.T) {
	assert.Equal(t, Default(), Load(nil, nil))
	assert.Equal(t, Default(), Load(storage.NewMemoryStorage(), nil))
}

func TestLoad_UndecodableEntry(t *testing.T) {
	for _, raw := range []string{"", "{", `{"radio":"Fourth"}`, `[1,2]`} {
		store := storage.NewMemoryStorage()
		store.SetString(storage.AppKey, raw)
		assert.Equal(t, Default(), Load(store, nil), raw)
	}
}

func TestLoad_ReadsStoredValue(t *testing.T) {
	store := storage.NewMemoryStorage()
	require.NoError(t, storage.SetValue(store, storage.AppKey, map[string]any{
		"label":   "stored",
		"boolean": true,
	}))

	s := Load(store, nil)
	assert.Equal(t, "stored", s.Label)
	assert.True(t, s.Flag)
	assert.Equal(t, First, s.Selection)
	assert.Equal(t, DefaultValue, s.Value)
}

func TestSave_WritesThroughSetValue(t *testing.T) {
	store := storage.NewMemoryStorage()
	s := Default()
	s.Selection = Third
	require.NoError(t, s.Save(store))

	var raw map[string]json.RawMessage
	require.NoError(t, storage.GetValue(store, storage.AppKey, &raw))
	assert.JSONEq(t, `"Third"`, string(raw["radio"]))
	assert.Equal(t, 0, store.Flushes())
}

func TestLoad_FileStorage(t *testing.T) {
	path := t.TempDir() + "/app.json"

	fs, err := storage.OpenFileStorage(path, nil)
	require.NoError(t, err)

	s := Default()
	s.Label = "persisted"
	require.NoError(t, s.Save(fs))
	require.NoError(t, fs.Flush())

	reopened, err := storage.OpenFileStorage(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "persisted", Load(reopened, nil).Label)
}

func TestReset(t *testing.T) {
	s := Default()
	s.Label = "changed"
	s.Theme = visuals.Light()

	s.Reset()
	assert.Equal(t, Default(), s)
}

func TestClone_IsIndependent(t *testing.T) {
	s := Default()
	c := s.Clone()
	c.Label = "other"
	c.Theme.PanelFill = visuals.White

	assert.Equal(t, DefaultLabel, s.Label)
	assert.Equal(t, visuals.Dark().PanelFill, s.Theme.PanelFill)
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
