// Package visuals defines the theme record edited by themedit: colours,
// strokes and per-state widget fills, plus the built-in dark and light presets.
package visuals

import (
	"fmt"
	"math"
)

// Stroke is a line width and colour.
type Stroke struct {
	Width float32 `json:"width" toml:"width" yaml:"width"`
	Color Color   `json:"color" toml:"color" yaml:"color"`
}

// Shadow is a drop shadow behind windows and popups.
type Shadow struct {
	Extrusion float32 `json:"extrusion" toml:"extrusion" yaml:"extrusion"`
	Color     Color   `json:"color" toml:"color" yaml:"color"`
}

// Selection styles selected text and selectable widgets.
type Selection struct {
	BgFill Color  `json:"bg_fill" toml:"bg_fill" yaml:"bg_fill"`
	Stroke Stroke `json:"stroke" toml:"stroke" yaml:"stroke"`
}

// WidgetVisuals styles a widget in one interaction state.
type WidgetVisuals struct {
	// BgFill is the background of widgets that must have one (checkbox, radio).
	BgFill Color `json:"bg_fill" toml:"bg_fill" yaml:"bg_fill"`
	// WeakBgFill is the background of widgets that may omit one (buttons, combo boxes).
	WeakBgFill Color   `json:"weak_bg_fill" toml:"weak_bg_fill" yaml:"weak_bg_fill"`
	BgStroke   Stroke  `json:"bg_stroke" toml:"bg_stroke" yaml:"bg_stroke"`
	FgStroke   Stroke  `json:"fg_stroke" toml:"fg_stroke" yaml:"fg_stroke"`
	Rounding   float32 `json:"rounding" toml:"rounding" yaml:"rounding"`
	Expansion  float32 `json:"expansion" toml:"expansion" yaml:"expansion"`
}

// Widgets holds the visuals for each interaction state.
type Widgets struct {
	Noninteractive WidgetVisuals `json:"noninteractive" toml:"noninteractive" yaml:"noninteractive"`
	Inactive       WidgetVisuals `json:"inactive" toml:"inactive" yaml:"inactive"`
	Hovered        WidgetVisuals `json:"hovered" toml:"hovered" yaml:"hovered"`
	Active         WidgetVisuals `json:"active" toml:"active" yaml:"active"`
	Open           WidgetVisuals `json:"open" toml:"open" yaml:"open"`
}

// Visuals is the full theme record.
//
// Decoding into a value that already holds defaults keeps the defaults for
// any key the input omits, at every nesting level.
type Visuals struct {
	DarkMode bool    `json:"dark_mode" toml:"dark_mode" yaml:"dark_mode"`
	Widgets  Widgets `json:"widgets" toml:"widgets" yaml:"widgets"`

	Selection Selection `json:"selection" toml:"selection" yaml:"selection"`

	HyperlinkColor Color `json:"hyperlink_color" toml:"hyperlink_color" yaml:"hyperlink_color"`
	FaintBgColor   Color `json:"faint_bg_color" toml:"faint_bg_color" yaml:"faint_bg_color"`
	ExtremeBgColor Color `json:"extreme_bg_color" toml:"extreme_bg_color" yaml:"extreme_bg_color"`
	CodeBgColor    Color `json:"code_bg_color" toml:"code_bg_color" yaml:"code_bg_color"`
	WarnFgColor    Color `json:"warn_fg_color" toml:"warn_fg_color" yaml:"warn_fg_color"`
	ErrorFgColor   Color `json:"error_fg_color" toml:"error_fg_color" yaml:"error_fg_color"`

	WindowRounding float32 `json:"window_rounding" toml:"window_rounding" yaml:"window_rounding"`
	WindowShadow   Shadow  `json:"window_shadow" toml:"window_shadow" yaml:"window_shadow"`
	WindowFill     Color   `json:"window_fill" toml:"window_fill" yaml:"window_fill"`
	WindowStroke   Stroke  `json:"window_stroke" toml:"window_stroke" yaml:"window_stroke"`

	PanelFill   Color  `json:"panel_fill" toml:"panel_fill" yaml:"panel_fill"`
	PopupShadow Shadow `json:"popup_shadow" toml:"popup_shadow" yaml:"popup_shadow"`

	ResizeCornerSize      float32 `json:"resize_corner_size" toml:"resize_corner_size" yaml:"resize_corner_size"`
	TextCursorWidth       float32 `json:"text_cursor_width" toml:"text_cursor_width" yaml:"text_cursor_width"`
	ClipRectMargin        float32 `json:"clip_rect_margin" toml:"clip_rect_margin" yaml:"clip_rect_margin"`
	ButtonFrame           bool    `json:"button_frame" toml:"button_frame" yaml:"button_frame"`
	CollapsingHeaderFrame bool    `json:"collapsing_header_frame" toml:"collapsing_header_frame" yaml:"collapsing_header_frame"`
	Striped               bool    `json:"striped" toml:"striped" yaml:"striped"`
}

// Dark returns the built-in dark theme. It is the default theme.
func Dark() Visuals {
	return Visuals{
		DarkMode: true,
		Widgets:  darkWidgets(),
		Selection: Selection{
			BgFill: RGB(0, 92, 128),
			Stroke: Stroke{Width: 1, Color: RGB(192, 222, 255)},
		},
		HyperlinkColor:        RGB(90, 170, 255),
		FaintBgColor:          AdditiveLuminance(5),
		ExtremeBgColor:        Gray(10),
		CodeBgColor:           Gray(64),
		WarnFgColor:           RGB(255, 143, 0),
		ErrorFgColor:          RGB(255, 0, 0),
		WindowRounding:        6,
		WindowShadow:          Shadow{Extrusion: 32, Color: BlackAlpha(96)},
		WindowFill:            Gray(27),
		WindowStroke:          Stroke{Width: 1, Color: Gray(60)},
		PanelFill:             Gray(27),
		PopupShadow:           Shadow{Extrusion: 16, Color: BlackAlpha(96)},
		ResizeCornerSize:      12,
		TextCursorWidth:       2,
		ClipRectMargin:        3,
		ButtonFrame:           true,
		CollapsingHeaderFrame: false,
		Striped:               false,
	}
}

// Light returns the built-in light theme.
func Light() Visuals {
	return Visuals{
		DarkMode: false,
		Widgets:  lightWidgets(),
		Selection: Selection{
			BgFill: RGB(144, 209, 255),
			Stroke: Stroke{Width: 1, Color: RGB(0, 83, 125)},
		},
		HyperlinkColor:        RGB(0, 155, 255),
		FaintBgColor:          AdditiveLuminance(5),
		ExtremeBgColor:        Gray(255),
		CodeBgColor:           Gray(230),
		WarnFgColor:           RGB(255, 100, 0),
		ErrorFgColor:          RGB(255, 0, 0),
		WindowRounding:        6,
		WindowShadow:          Shadow{Extrusion: 32, Color: BlackAlpha(16)},
		WindowFill:            Gray(248),
		WindowStroke:          Stroke{Width: 1, Color: Gray(190)},
		PanelFill:             Gray(248),
		PopupShadow:           Shadow{Extrusion: 16, Color: BlackAlpha(6)},
		ResizeCornerSize:      12,
		TextCursorWidth:       2,
		ClipRectMargin:        3,
		ButtonFrame:           true,
		CollapsingHeaderFrame: false,
		Striped:               false,
	}
}

func darkWidgets() Widgets {
	return Widgets{
		Noninteractive: WidgetVisuals{
			BgFill:     Gray(27),
			WeakBgFill: Gray(27),
			BgStroke:   Stroke{Width: 1, Color: Gray(60)},
			FgStroke:   Stroke{Width: 1, Color: Gray(140)},
			Rounding:   2,
		},
		Inactive: WidgetVisuals{
			BgFill:     Gray(60),
			WeakBgFill: Gray(60),
			BgStroke:   Stroke{Width: 0, Color: Transparent},
			FgStroke:   Stroke{Width: 1, Color: Gray(180)},
			Rounding:   2,
		},
		Hovered: WidgetVisuals{
			BgFill:     Gray(70),
			WeakBgFill: Gray(70),
			BgStroke:   Stroke{Width: 1, Color: Gray(150)},
			FgStroke:   Stroke{Width: 1.5, Color: Gray(240)},
			Rounding:   3,
			Expansion:  1,
		},
		Active: WidgetVisuals{
			BgFill:     Gray(55),
			WeakBgFill: Gray(55),
			BgStroke:   Stroke{Width: 1, Color: White},
			FgStroke:   Stroke{Width: 2, Color: White},
			Rounding:   2,
			Expansion:  1,
		},
		Open: WidgetVisuals{
			BgFill:     Gray(27),
			WeakBgFill: Gray(27),
			BgStroke:   Stroke{Width: 1, Color: Gray(60)},
			FgStroke:   Stroke{Width: 1, Color: Gray(210)},
			Rounding:   2,
		},
	}
}

func lightWidgets() Widgets {
	return Widgets{
		Noninteractive: WidgetVisuals{
			BgFill:     Gray(248),
			WeakBgFill: Gray(248),
			BgStroke:   Stroke{Width: 1, Color: Gray(190)},
			FgStroke:   Stroke{Width: 1, Color: Gray(80)},
			Rounding:   2,
		},
		Inactive: WidgetVisuals{
			BgFill:     Gray(230),
			WeakBgFill: Gray(230),
			BgStroke:   Stroke{Width: 0, Color: Transparent},
			FgStroke:   Stroke{Width: 1, Color: Gray(60)},
			Rounding:   2,
		},
		Hovered: WidgetVisuals{
			BgFill:     Gray(220),
			WeakBgFill: Gray(220),
			BgStroke:   Stroke{Width: 1, Color: Gray(105)},
			FgStroke:   Stroke{Width: 1.5, Color: Black},
			Rounding:   3,
			Expansion:  1,
		},
		Active: WidgetVisuals{
			BgFill:     Gray(165),
			WeakBgFill: Gray(165),
			BgStroke:   Stroke{Width: 1, Color: Black},
			FgStroke:   Stroke{Width: 2, Color: Black},
			Rounding:   2,
			Expansion:  1,
		},
		Open: WidgetVisuals{
			BgFill:     Gray(220),
			WeakBgFill: Gray(220),
			BgStroke:   Stroke{Width: 1, Color: Gray(160)},
			FgStroke:   Stroke{Width: 1, Color: Black},
			Rounding:   2,
		},
	}
}

// TextColor returns the colour used for ordinary text.
func (v *Visuals) TextColor() Color {
	return v.Widgets.Noninteractive.FgStroke.Color
}

// StrongTextColor returns the colour used for headings and strong labels.
func (v *Visuals) StrongTextColor() Color {
	return v.Widgets.Active.FgStroke.Color
}

type floatField struct {
	key string
	val float32
}

// Validate reports the first non-finite float in v. JSON cannot carry NaN
// or infinities, so a theme holding one could never be saved.
func (v *Visuals) Validate() error {
	floats := []floatField{
		{"selection.stroke.width", v.Selection.Stroke.Width},
		{"window_rounding", v.WindowRounding},
		{"window_shadow.extrusion", v.WindowShadow.Extrusion},
		{"window_stroke.width", v.WindowStroke.Width},
		{"popup_shadow.extrusion", v.PopupShadow.Extrusion},
		{"resize_corner_size", v.ResizeCornerSize},
		{"text_cursor_width", v.TextCursorWidth},
		{"clip_rect_margin", v.ClipRectMargin},
	}
	states := []struct {
		name string
		w    *WidgetVisuals
	}{
		{"noninteractive", &v.Widgets.Noninteractive},
		{"inactive", &v.Widgets.Inactive},
		{"hovered", &v.Widgets.Hovered},
		{"active", &v.Widgets.Active},
		{"open", &v.Widgets.Open},
	}
	for _, st := range states {
		prefix := "widgets." + st.name + "."
		floats = append(floats,
			floatField{prefix + "bg_stroke.width", st.w.BgStroke.Width},
			floatField{prefix + "fg_stroke.width", st.w.FgStroke.Width},
			floatField{prefix + "rounding", st.w.Rounding},
			floatField{prefix + "expansion", st.w.Expansion},
		)
	}

	for _, f := range floats {
		x := float64(f.val)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s: %v is not a finite number", f.key, f.val)
		}
	}
	return nil
}
