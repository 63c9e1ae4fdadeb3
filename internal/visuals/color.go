package visuals

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a colour string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is an 8-bit sRGBA colour.
// It is text-encoded as #rrggbbaa so JSON, TOML and YAML share one form.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Gray returns an opaque gray with all channels set to l.
func Gray(l uint8) Color {
	return Color{R: l, G: l, B: l, A: 255}
}

// BlackAlpha returns black with the given alpha.
func BlackAlpha(a uint8) Color {
	return Color{A: a}
}

// AdditiveLuminance returns a colour with zero alpha, which blends additively.
func AdditiveLuminance(l uint8) Color {
	return Color{R: l, G: l, B: l}
}

// Transparent is fully transparent black.
var Transparent = Color{}

// White and Black are opaque.
var (
	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
)

// ParseColor parses #rgb, #rrggbb or #rrggbbaa (the leading # is optional).
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Hex returns #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// HexRGB returns #rrggbb, dropping alpha. Terminal renderers take this form.
func (c Color) HexRGB() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Channel identifies one editable component of a colour.
type Channel int

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA
	ChannelH
	ChannelS
	ChannelV
)

// Channels lists every channel in editor order.
var Channels = []Channel{ChannelR, ChannelG, ChannelB, ChannelA, ChannelH, ChannelS, ChannelV}

func (ch Channel) String() string {
	switch ch {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	case ChannelA:
		return "A"
	case ChannelH:
		return "H"
	case ChannelS:
		return "S"
	case ChannelV:
		return "V"
	default:
		return "?"
	}
}

// toColorful converts to go-colorful's float representation, ignoring alpha.
func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// HSV returns hue in [0,360), saturation and value in [0,1].
func (c Color) HSV() (h, s, v float64) {
	return c.toColorful().Hsv()
}

// Get returns the channel value scaled for display: 0-255 for RGBA,
// degrees for hue and percent for saturation/value.
func (c Color) Get(ch Channel) int {
	h, s, v := c.HSV()
	switch ch {
	case ChannelR:
		return int(c.R)
	case ChannelG:
		return int(c.G)
	case ChannelB:
		return int(c.B)
	case ChannelA:
		return int(c.A)
	case ChannelH:
		return int(h + 0.5)
	case ChannelS:
		return int(s*100 + 0.5)
	case ChannelV:
		return int(v*100 + 0.5)
	default:
		return 0
	}
}

// Adjust returns c with the channel moved by delta, in the units of Get.
// RGBA channels clamp to 0-255, hue wraps, saturation/value clamp to 0-100.
// The result is always a valid colour.
func (c Color) Adjust(ch Channel, delta int) Color {
	switch ch {
	case ChannelR:
		c.R = clamp8(int(c.R) + delta)
	case ChannelG:
		c.G = clamp8(int(c.G) + delta)
	case ChannelB:
		c.B = clamp8(int(c.B) + delta)
	case ChannelA:
		c.A = clamp8(int(c.A) + delta)
	case ChannelH, ChannelS, ChannelV:
		h, s, v := c.HSV()
		switch ch {
		case ChannelH:
			h = wrapHue(h + float64(delta))
		case ChannelS:
			s = clampUnit(s + float64(delta)/100)
		case ChannelV:
			v = clampUnit(v + float64(delta)/100)
		}
		r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
		c.R, c.G, c.B = r, g, b
	}
	return c
}

// Lightness returns the HSL lightness in [0,1]. Swatches use it to pick a
// readable label colour.
func (c Color) Lightness() float64 {
	_, _, l := c.toColorful().Hsl()
	return l
}

// Over composites c onto an opaque background, for outputs without alpha.
func (c Color) Over(bg Color) Color {
	if c.A == 255 {
		return c
	}
	r, g, b := bg.toColorful().BlendRgb(c.toColorful(), float64(c.A)/255).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 255}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func wrapHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
