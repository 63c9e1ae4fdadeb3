// Package storage provides the key/value persistence hook that the editor
// uses to restore its state on start-up and save it on shutdown.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// AppKey is the key the application state is stored under.
const AppKey = "app"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// ErrClosed is returned when a flushed-and-closed storage is written to.
var ErrClosed = errors.New("storage is closed")

// Storage is a string key/value store owned by the host.
// Values are only guaranteed to reach disk after Flush.
type Storage interface {
	// GetString returns the value for key and whether it exists.
	GetString(key string) (string, bool)

	// SetString stores value under key.
	SetString(key, value string)

	// Remove deletes key.
	Remove(key string)

	// Flush writes pending changes to the backing medium.
	Flush() error
}

// GetValue decodes the JSON value stored under key into v.
// Returns ErrNotFound if the key is absent.
func GetValue(s Storage, key string, v any) error {
	if s == nil {
		return ErrNotFound
	}
	raw, ok := s.GetString(key)
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetValue encodes v as JSON and stores it under key.
func SetValue(s Storage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.SetString(key, string(data))
	return nil
}
