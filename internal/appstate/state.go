// Package appstate holds the editor's single long-lived state record and
// its persistence round trip.
package appstate

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jmylchreest/themedit/internal/storage"
	"github.com/jmylchreest/themedit/internal/visuals"
)

// Default values.
const (
	DefaultLabel = "Hello World!"
	DefaultValue = 2.7
)

// Value range of the slider.
const (
	ValueMin = 0.0
	ValueMax = 360.0
)

// State is everything the user can edit.
//
// Decoding starts from Default, so any key absent from persisted data keeps
// its default. Value is never persisted.
type State struct {
	Label     string          `json:"label"`
	Flag      bool            `json:"boolean"`
	Selection Selection       `json:"radio"`
	Value     float64         `json:"-"`
	Theme     visuals.Visuals `json:"theme"`
}

// Default returns the all-defaults state.
func Default() *State {
	return &State{
		Label:     DefaultLabel,
		Flag:      false,
		Selection: First,
		Value:     DefaultValue,
		Theme:     visuals.Dark(),
	}
}

// Clone returns a copy of s.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Reset restores every field to its default in place.
func (s *State) Reset() {
	*s = *Default()
}

// Restore builds a State from persisted bytes.
// Empty input, malformed input, or input that does not fit the schema all
// yield Default. The failure is logged at debug level and never returned.
func Restore(data []byte, logger *slog.Logger) *State {
	if len(bytes.TrimSpace(data)) == 0 {
		return Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := Default()
	if err := json.Unmarshal(data, s); err != nil {
		logger.Debug("discarding persisted state", "error", err)
		return Default()
	}

	// Value is excluded from persistence, whatever the input carried.
	s.Value = DefaultValue
	return s
}

// Load restores the state stored under storage.AppKey, or defaults when the
// store is nil, has no entry, or holds something that does not decode.
func Load(store storage.Storage, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}

	var raw json.RawMessage
	if err := storage.GetValue(store, storage.AppKey, &raw); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Debug("discarding persisted state", "error", err)
		}
		return Default()
	}
	return Restore(raw, logger)
}

// Marshal encodes s for persistence. Value is omitted.
func (s *State) Marshal() ([]byte, error) {
	if !s.Selection.Valid() {
		return nil, errInvalidSelection
	}
	return json.Marshal(s)
}

// Save stores s under storage.AppKey. It does not flush.
func (s *State) Save(store storage.Storage) error {
	if !s.Selection.Valid() {
		return errInvalidSelection
	}
	return storage.SetValue(store, storage.AppKey, s)
}

var errInvalidSelection = errors.New("state has invalid selection")
