package visuals

import (
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
		wantErr  bool
	}{
		{"#5aaaff", RGB(90, 170, 255), false},
		{"5aaaff", RGB(90, 170, 255), false},
		{"#00000060", BlackAlpha(96), false},
		{"#fff", White, false},
		{"  #1b1b1bff ", Gray(27), false},
		{"#ABCDEF", RGB(0xab, 0xcd, 0xef), false},
		{"", Color{}, true},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
		{"#+12345", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestColor_Hex(t *testing.T) {
	assert.Equal(t, "#5aaaffff", RGB(90, 170, 255).Hex())
	assert.Equal(t, "#5aaaff", RGB(90, 170, 255).HexRGB())
	assert.Equal(t, "#05050500", AdditiveLuminance(5).String())
}

func TestColor_TextEncodings(t *testing.T) {
	type doc struct {
		C Color `json:"c" toml:"c" yaml:"c"`
	}
	in := doc{C: Color{R: 1, G: 2, B: 3, A: 4}}

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"c":"#01020304"}`, string(data))

		var out doc
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("toml", func(t *testing.T) {
		data, err := toml.Marshal(in)
		require.NoError(t, err)
		assert.Contains(t, string(data), "#01020304")

		var out doc
		require.NoError(t, toml.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(in)
		require.NoError(t, err)
		assert.Contains(t, string(data), "#01020304")

		var out doc
		require.NoError(t, yaml.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("json invalid", func(t *testing.T) {
		var out doc
		err := json.Unmarshal([]byte(`{"c":"nope"}`), &out)
		assert.Error(t, err)
	})
}

func TestColor_AdjustRGBAClamps(t *testing.T) {
	c := RGB(250, 5, 128)

	assert.Equal(t, uint8(255), c.Adjust(ChannelR, 16).R)
	assert.Equal(t, uint8(0), c.Adjust(ChannelG, -16).G)
	assert.Equal(t, uint8(129), c.Adjust(ChannelB, 1).B)
	assert.Equal(t, uint8(239), c.Adjust(ChannelA, -16).A)

	// Other channels are untouched.
	adjusted := c.Adjust(ChannelR, 1)
	assert.Equal(t, c.G, adjusted.G)
	assert.Equal(t, c.B, adjusted.B)
	assert.Equal(t, c.A, adjusted.A)
}

func TestColor_AdjustHSV(t *testing.T) {
	red := RGB(255, 0, 0)

	assert.Equal(t, 0, red.Get(ChannelH))
	assert.Equal(t, 100, red.Get(ChannelS))
	assert.Equal(t, 100, red.Get(ChannelV))

	green := red.Adjust(ChannelH, 120)
	assert.Equal(t, RGB(0, 255, 0), green)

	// Hue wraps rather than clamping.
	wrapped := red.Adjust(ChannelH, -120)
	assert.Equal(t, RGB(0, 0, 255), wrapped)

	// Value clamps at zero and keeps alpha.
	withAlpha := Color{R: 200, G: 100, B: 50, A: 42}
	black := withAlpha.Adjust(ChannelV, -500)
	assert.Equal(t, Color{A: 42}, black)

	gray := red.Adjust(ChannelS, -100)
	assert.Equal(t, RGB(255, 255, 255), gray)
}

func TestColor_AdjustIsTotal(t *testing.T) {
	c := Gray(27)
	for _, ch := range Channels {
		for _, delta := range []int{-1000, -16, -1, 0, 1, 16, 1000} {
			got := c.Adjust(ch, delta)
			_, err := ParseColor(got.Hex())
			assert.NoError(t, err, "channel %s delta %d", ch, delta)
		}
	}
}

func TestColor_Lightness(t *testing.T) {
	assert.InDelta(t, 0.0, Black.Lightness(), 0.001)
	assert.InDelta(t, 1.0, White.Lightness(), 0.001)
}

func TestColor_Over(t *testing.T) {
	bg := RGB(0, 0, 0)

	assert.Equal(t, RGB(10, 20, 30), RGB(10, 20, 30).Over(bg))
	assert.Equal(t, bg, Transparent.Over(bg))

	half := Color{R: 255, G: 255, B: 255, A: 128}.Over(bg)
	assert.Equal(t, uint8(255), half.A)
	assert.InDelta(t, 128, int(half.R), 1)
}
