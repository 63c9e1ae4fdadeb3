package visuals

// Field is one editable colour of a Visuals, as bound by the side panel.
type Field struct {
	// Group is the heading the field is listed under.
	Group string
	// Label is shown next to the swatch.
	Label string
	// Key is a stable dotted path, used for status messages and tests.
	Key string

	get func(v *Visuals) *Color
}

// Ptr returns a pointer to the field inside v.
func (f Field) Ptr(v *Visuals) *Color {
	return f.get(v)
}

// Get returns the field's current colour.
func (f Field) Get(v *Visuals) Color {
	return *f.get(v)
}

// Set replaces the field's colour.
func (f Field) Set(v *Visuals, c Color) {
	*f.get(v) = c
}

// Group headings, in display order.
const (
	GroupGeneral        = "Theme Editor"
	GroupSelection      = "Selection"
	GroupShadows        = "Shadows"
	GroupInactive       = "Widgets: inactive"
	GroupHovered        = "Widgets: hovered"
	GroupActive         = "Widgets: active"
	GroupNoninteractive = "Widgets: noninteractive"
)

var fields = []Field{
	{GroupGeneral, "Hyperlink color", "hyperlink_color", func(v *Visuals) *Color { return &v.HyperlinkColor }},
	{GroupGeneral, "faint_bg_color", "faint_bg_color", func(v *Visuals) *Color { return &v.FaintBgColor }},
	{GroupGeneral, "extreme_bg_color", "extreme_bg_color", func(v *Visuals) *Color { return &v.ExtremeBgColor }},
	{GroupGeneral, "code_bg_color", "code_bg_color", func(v *Visuals) *Color { return &v.CodeBgColor }},
	{GroupGeneral, "warn_fg_color", "warn_fg_color", func(v *Visuals) *Color { return &v.WarnFgColor }},
	{GroupGeneral, "error_fg_color", "error_fg_color", func(v *Visuals) *Color { return &v.ErrorFgColor }},
	{GroupGeneral, "window_fill", "window_fill", func(v *Visuals) *Color { return &v.WindowFill }},
	{GroupGeneral, "panel_fill", "panel_fill", func(v *Visuals) *Color { return &v.PanelFill }},
	{GroupGeneral, "window_stroke.color", "window_stroke.color", func(v *Visuals) *Color { return &v.WindowStroke.Color }},

	{GroupSelection, "selection.bg_fill", "selection.bg_fill", func(v *Visuals) *Color { return &v.Selection.BgFill }},
	{GroupSelection, "selection.stroke.color", "selection.stroke.color", func(v *Visuals) *Color { return &v.Selection.Stroke.Color }},

	{GroupShadows, "window_shadow.color", "window_shadow.color", func(v *Visuals) *Color { return &v.WindowShadow.Color }},
	{GroupShadows, "popup_shadow.color", "popup_shadow.color", func(v *Visuals) *Color { return &v.PopupShadow.Color }},
}

func init() {
	states := []struct {
		group string
		key   string
		get   func(v *Visuals) *WidgetVisuals
	}{
		{GroupInactive, "inactive", func(v *Visuals) *WidgetVisuals { return &v.Widgets.Inactive }},
		{GroupHovered, "hovered", func(v *Visuals) *WidgetVisuals { return &v.Widgets.Hovered }},
		{GroupActive, "active", func(v *Visuals) *WidgetVisuals { return &v.Widgets.Active }},
		{GroupNoninteractive, "noninteractive", func(v *Visuals) *WidgetVisuals { return &v.Widgets.Noninteractive }},
	}

	for _, st := range states {
		get := st.get
		prefix := "widgets." + st.key + "."
		fields = append(fields,
			Field{st.group, "bg_fill", prefix + "bg_fill", func(v *Visuals) *Color { return &get(v).BgFill }},
			Field{st.group, "weak_bg_fill", prefix + "weak_bg_fill", func(v *Visuals) *Color { return &get(v).WeakBgFill }},
			Field{st.group, "bg_stroke.color", prefix + "bg_stroke.color", func(v *Visuals) *Color { return &get(v).BgStroke.Color }},
		)
	}
}

// Fields returns the fixed, ordered list of editable colour fields.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldByKey looks up a field by its dotted key.
func FieldByKey(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
