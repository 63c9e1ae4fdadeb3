package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/themedit/internal/visuals"
)

// PlainFormatter lists the editable colour fields, one per line, grouped
// the way the side panel shows them.
type PlainFormatter struct{}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

// Format writes one "key  #rrggbbaa" line per field.
func (f *PlainFormatter) Format(w io.Writer, v visuals.Visuals) error {
	group := ""
	for _, field := range visuals.Fields() {
		if field.Group != group {
			if group != "" {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			group = field.Group
			if _, err := fmt.Fprintf(w, "%s:\n", group); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  %-40s %s\n", field.Key, field.Get(&v).Hex()); err != nil {
			return err
		}
	}
	return nil
}
