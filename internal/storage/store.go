package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// StorageKey is the single key under which the in-progress application record
// is persisted. It is fixed for the whole application.
const StorageKey = "socialSupportFormData"

// Store is a key-value store for serialized blobs.
//
// Load reports absence separately from failure: a missing key returns
// ("", false, nil). Save and Clear may fail; callers treat those failures as
// non-fatal and continue with in-memory state.
type Store interface {
	Save(key, blob string) error
	Load(key string) (blob string, ok bool, err error)
	Clear(key string) error
}

// FileStore persists blobs as individual files in a directory, one file per
// key, named <key>.json. The directory is created on first save.
type FileStore struct {
	dir string

	// mu serializes file operations so concurrent saves cannot interleave
	mu sync.Mutex
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file path that backs the given key.
func (fs *FileStore) Path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

// Save writes the blob for key, creating the store directory if needed.
func (fs *FileStore) Save(key, blob string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	// Write to a temp file and rename so a crash mid-write cannot leave a
	// truncated blob behind.
	path := fs.Path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(blob), 0o600); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace blob: %w", err)
	}

	return nil
}

// Load reads the blob for key. A missing file is reported as absent, not as
// an error.
func (fs *FileStore) Load(key string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := os.ReadFile(fs.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read blob: %w", err)
	}

	return string(data), true, nil
}

// Clear removes the blob for key. Clearing a key that was never saved is not
// an error.
func (fs *FileStore) Clear(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	err := os.Remove(fs.Path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove blob: %w", err)
	}

	return nil
}

// MemStore is an in-memory Store. It records every save in order and supports
// fault injection, which makes it the store of choice in tests.
type MemStore struct {
	mu    sync.Mutex
	blobs map[string]string

	// Saves holds every blob passed to Save, in call order.
	Saves []string

	// Error hooks. When non-nil the corresponding operation fails with the
	// given error without touching the stored data.
	SaveErr  error
	LoadErr  error
	ClearErr error
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string]string)}
}

// Save stores the blob for key and appends it to the save history.
func (ms *MemStore) Save(key, blob string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.SaveErr != nil {
		return ms.SaveErr
	}

	ms.blobs[key] = blob
	ms.Saves = append(ms.Saves, blob)
	return nil
}

// Load returns the blob for key, reporting absence for unknown keys.
func (ms *MemStore) Load(key string) (string, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.LoadErr != nil {
		return "", false, ms.LoadErr
	}

	blob, ok := ms.blobs[key]
	return blob, ok, nil
}

// Clear removes the blob for key.
func (ms *MemStore) Clear(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.ClearErr != nil {
		return ms.ClearErr
	}

	delete(ms.blobs, key)
	return nil
}

// SaveCount returns the number of saves recorded so far.
func (ms *MemStore) SaveCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.Saves)
}

// LastSave returns the most recent saved blob, or "" if nothing was saved.
func (ms *MemStore) LastSave() string {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if len(ms.Saves) == 0 {
		return ""
	}
	return ms.Saves[len(ms.Saves)-1]
}
