package appstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_String(t *testing.T) {
	assert.Equal(t, "First", First.String())
	assert.Equal(t, "Second", Second.String())
	assert.Equal(t, "Third", Third.String())
	assert.Equal(t, "Selection(9)", Selection(9).String())
}

func TestSelection_Cycle(t *testing.T) {
	tests := []struct {
		in   Selection
		next Selection
		prev Selection
	}{
		{First, Second, Third},
		{Second, Third, First},
		{Third, First, Second},
		{Selection(-4), Second, Third}, // invalid values are treated as First
		{Selection(12), Second, Third},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.next, tt.in.Next())
			assert.Equal(t, tt.prev, tt.in.Prev())
		})
	}
}

func TestSelection_TextRoundTrip(t *testing.T) {
	for _, s := range Selections {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var out Selection
		require.NoError(t, out.UnmarshalText(text))
		assert.Equal(t, s, out)
	}
}

func TestSelection_UnmarshalRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "first", "Fourth", "0"} {
		t.Run(in, func(t *testing.T) {
			out := Second
			assert.Error(t, out.UnmarshalText([]byte(in)))
			assert.Equal(t, Second, out)
		})
	}
}

func TestSelection_ClosedUnderCycling(t *testing.T) {
	s := First
	for i := 0; i < 50; i++ {
		if i%3 == 0 {
			s = s.Prev()
		} else {
			s = s.Next()
		}
		assert.True(t, s.Valid())
	}
}
