package appstate

import "fmt"

// Selection is the closed three-way choice bound to the radio group,
// selectable group and combo box.
type Selection int

const (
	First Selection = iota
	Second
	Third
)

// Selections lists every value in display order.
var Selections = []Selection{First, Second, Third}

// Valid reports whether s is one of First, Second or Third.
func (s Selection) Valid() bool {
	return s >= First && s <= Third
}

func (s Selection) String() string {
	switch s {
	case First:
		return "First"
	case Second:
		return "Second"
	case Third:
		return "Third"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// Next returns the following value, wrapping from Third to First.
func (s Selection) Next() Selection {
	return Selection((int(s.normalized()) + 1) % len(Selections))
}

// Prev returns the preceding value, wrapping from First to Third.
func (s Selection) Prev() Selection {
	n := len(Selections)
	return Selection((int(s.normalized()) + n - 1) % n)
}

func (s Selection) normalized() Selection {
	if !s.Valid() {
		return First
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (s Selection) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid selection %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the three variant
// names are accepted.
func (s *Selection) UnmarshalText(text []byte) error {
	for _, v := range Selections {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown selection %q", string(text))
}
