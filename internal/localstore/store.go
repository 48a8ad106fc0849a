// Package localstore persists small JSON documents under a directory,
// one file per fixed key. It is the client-side equivalent of browser
// local storage: a handful of well-known keys, read at startup, written
// on every mutation.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store holds JSON documents in a directory, one "<key>.json" per key.
type Store struct {
	dir string
}

// Open creates the backing directory if needed and returns a store.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *Store) Dir() string {
	return s.dir
}

// Get unmarshals the document for key into v. The bool reports whether
// the key existed, so callers can tell "never written" from a zero value.
func (s *Store) Get(key string, v interface{}) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode key %q: %w", key, err)
	}
	return true, nil
}

// Put marshals v and writes it for key. The write goes through a temp
// file and rename so a crash never leaves a half-written document.
func (s *Store) Put(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode key %q: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to store key %q: %w", key, err)
	}
	return nil
}

// Has reports whether a document exists for key.
func (s *Store) Has(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

// Delete removes the document for key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
