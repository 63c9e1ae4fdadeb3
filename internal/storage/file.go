package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SchemaVersion is the current state file schema version.
const SchemaVersion = 1

// fileDocument is the on-disk layout of the state file.
type fileDocument struct {
	SchemaVersion int               `json:"themedit_schema_version"`
	SavedAt       int64             `json:"saved_at,omitempty"`
	Entries       map[string]string `json:"entries"`
}

// FileStorage is a Storage backed by a single JSON file.
// Reads are served from memory; Flush rewrites the file atomically.
type FileStorage struct {
	mu      sync.RWMutex
	logger  *slog.Logger
	path    string
	entries map[string]string
	savedAt time.Time
	dirty   bool
	closed  bool
}

// OpenFileStorage loads the state file at path.
// A missing file gives an empty store. A corrupt file is logged and treated
// as empty, so the application starts from defaults; it is only replaced on
// the next Flush. A file written by a newer schema is refused.
func OpenFileStorage(path string, logger *slog.Logger) (*FileStorage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return nil, errors.New("no state file path")
	}

	fs := &FileStorage{
		logger:  logger,
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("state file is corrupt, starting from defaults", "path", path, "error", err)
		return fs, nil
	}

	if doc.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d (max: %d)",
			doc.SchemaVersion, SchemaVersion)
	}

	for k, v := range doc.Entries {
		fs.entries[k] = v
	}
	if doc.SavedAt > 0 {
		fs.savedAt = time.Unix(doc.SavedAt, 0)
	}

	logger.Debug("loaded state file", "path", path, "entries", len(fs.entries))
	return fs, nil
}

// Path returns the backing file path.
func (f *FileStorage) Path() string {
	return f.path
}

// SavedAt returns when the file was last flushed, zero if never.
func (f *FileStorage) SavedAt() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.savedAt
}

// GetString implements Storage.
func (f *FileStorage) GetString(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.entries[key]
	return v, ok
}

// SetString implements Storage.
func (f *FileStorage) SetString(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cur, ok := f.entries[key]; ok && cur == value {
		return
	}
	f.entries[key] = value
	f.dirty = true
}

// Remove implements Storage.
func (f *FileStorage) Remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[key]; !ok {
		return
	}
	delete(f.entries, key)
	f.dirty = true
}

// Flush writes the entries to disk if anything changed since the last flush.
func (f *FileStorage) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	if !f.dirty {
		return nil
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	now := time.Now()
	doc := fileDocument{
		SchemaVersion: SchemaVersion,
		SavedAt:       now.Unix(),
		Entries:       f.entries,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	// Write atomically via temp file
	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	f.dirty = false
	f.savedAt = time.Unix(now.Unix(), 0)
	f.logger.Debug("flushed state file", "path", f.path, "entries", len(f.entries))
	return nil
}

// Close flushes pending changes and rejects further flushes.
func (f *FileStorage) Close() error {
	err := f.Flush()
	if errors.Is(err, ErrClosed) {
		return nil
	}

	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return err
}
