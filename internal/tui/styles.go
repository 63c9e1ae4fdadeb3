package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/themedit/internal/visuals"
)

// WidgetStyles styles a widget in one interaction state.
type WidgetStyles struct {
	Strong lipgloss.Style // bg_fill: checkboxes, radio buttons, slider handle
	Weak   lipgloss.Style // weak_bg_fill: buttons, combo boxes
	Frame  lipgloss.Style // bg_stroke: outline of framed widgets
}

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Panel     lipgloss.Style
	Side      lipgloss.Style
	TopBar    lipgloss.Style
	Window    lipgloss.Style
	Heading   lipgloss.Style
	Label     lipgloss.Style
	Separator lipgloss.Style
	Strong    lipgloss.Style
	Text      lipgloss.Style
	Weak      lipgloss.Style
	Hyperlink lipgloss.Style
	Code      lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Selected  lipgloss.Style
	TextEdit  lipgloss.Style
	Striped   lipgloss.Style

	WindowShadow lipgloss.Style
	PopupShadow  lipgloss.Style

	Noninteractive WidgetStyles
	Inactive       WidgetStyles
	Hovered        WidgetStyles
	Active         WidgetStyles

	panelFill visuals.Color
}

// NewStyles derives the styles for v. Translucent colours are composited
// onto the panel fill since terminals have no alpha.
func NewStyles(v visuals.Visuals) Styles {
	panel := v.PanelFill.Over(visuals.Black)
	c := func(col visuals.Color) lipgloss.Color {
		return lipgloss.Color(col.Over(panel).HexRGB())
	}

	text := c(v.TextColor())
	strong := c(v.StrongTextColor())
	panelBg := c(v.PanelFill)

	s := Styles{
		panelFill: panel,

		Panel: lipgloss.NewStyle().
			Background(c(v.PanelFill)).
			Foreground(text),
		Side: lipgloss.NewStyle().
			Background(c(v.PanelFill)).
			Foreground(text).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(c(v.WindowStroke.Color)).
			BorderBackground(c(v.PanelFill)),
		TopBar: lipgloss.NewStyle().
			Background(c(v.PanelFill)).
			Foreground(text).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(c(v.WindowStroke.Color)).
			BorderBackground(c(v.PanelFill)),
		Window: lipgloss.NewStyle().
			Background(c(v.WindowFill)).
			Foreground(text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(v.WindowStroke.Color)).
			Padding(0, 1),
		Heading: lipgloss.NewStyle().
			Background(c(v.Widgets.Noninteractive.BgFill)).
			Foreground(strong).
			Bold(true),
		Label: lipgloss.NewStyle().
			Background(c(v.Widgets.Noninteractive.WeakBgFill)).
			Foreground(text),
		Separator: lipgloss.NewStyle().
			Foreground(c(v.Widgets.Noninteractive.BgStroke.Color)),
		Strong: lipgloss.NewStyle().
			Foreground(strong),
		Text: lipgloss.NewStyle().
			Foreground(text),
		Weak: lipgloss.NewStyle().
			Foreground(text).
			Faint(true),
		Hyperlink: lipgloss.NewStyle().
			Foreground(c(v.HyperlinkColor)).
			Underline(true),
		Code: lipgloss.NewStyle().
			Background(c(v.CodeBgColor)).
			Foreground(text),
		Warn: lipgloss.NewStyle().
			Foreground(c(v.WarnFgColor)),
		Error: lipgloss.NewStyle().
			Foreground(c(v.ErrorFgColor)),
		Selected: lipgloss.NewStyle().
			Background(c(v.Selection.BgFill)).
			Foreground(c(v.Selection.Stroke.Color)),
		TextEdit: lipgloss.NewStyle().
			Background(c(v.ExtremeBgColor)).
			Foreground(text),
		Striped: lipgloss.NewStyle().
			Background(c(v.FaintBgColor)).
			Foreground(text),

		WindowShadow: lipgloss.NewStyle().Background(c(v.WindowShadow.Color)),
		PopupShadow:  lipgloss.NewStyle().Background(c(v.PopupShadow.Color)),

		Noninteractive: widgetStyles(v.Widgets.Noninteractive, c, panelBg),
		Inactive:       widgetStyles(v.Widgets.Inactive, c, panelBg),
		Hovered:        widgetStyles(v.Widgets.Hovered, c, panelBg),
		Active:         widgetStyles(v.Widgets.Active, c, panelBg),
	}

	return s
}

func widgetStyles(w visuals.WidgetVisuals, c func(visuals.Color) lipgloss.Color, panel lipgloss.Color) WidgetStyles {
	fg := c(w.FgStroke.Color)
	return WidgetStyles{
		Strong: lipgloss.NewStyle().Background(c(w.BgFill)).Foreground(fg),
		Weak:   lipgloss.NewStyle().Background(c(w.WeakBgFill)).Foreground(fg),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(w.BgStroke.Color)).
			BorderBackground(panel),
	}
}

// Widget returns the styles for a widget in the given interaction state.
// Active wins over focused.
func (s Styles) Widget(focused, active bool) WidgetStyles {
	switch {
	case active:
		return s.Active
	case focused:
		return s.Hovered
	default:
		return s.Inactive
	}
}

// dropShadow draws a one cell shadow below and to the right of box.
func dropShadow(box string, shadow lipgloss.Style) string {
	w, h := lipgloss.Width(box), lipgloss.Height(box)

	right := make([]string, h)
	right[0] = " "
	for i := 1; i < h; i++ {
		right[i] = shadow.Render(" ")
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, box, strings.Join(right, "\n"))
	return body + "\n " + shadow.Render(strings.Repeat(" ", w))
}

// Swatch renders a colour sample with its hex value, choosing a readable
// label colour from the sample's lightness.
func (s Styles) Swatch(col visuals.Color) string {
	flat := col.Over(s.panelFill)
	fg := visuals.White
	if flat.Lightness() > 0.55 {
		fg = visuals.Black
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(flat.HexRGB())).
		Foreground(lipgloss.Color(fg.HexRGB())).
		Render(" " + col.Hex() + " ")
}
