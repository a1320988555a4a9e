// Package storage provides the durable per-browser store analog: a small
// JSON key/value store backed by one file per key in a local directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the durable key/value surface the cart persists through.
type Store interface {
	Get(key string, dest any) (bool, error)
	GetRaw(key string) ([]byte, bool, error)
	Set(key string, value any) error
	Delete(key string) error
	Close() error
}

type fileStore struct {
	dir string
}

// NewFileStore creates the backing directory if needed and returns a Store
// writing each key as <dir>/<key>.json.
func NewFileStore(dir string) (Store, error) {

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	return &fileStore{dir: dir}, nil
}

func (f *fileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *fileStore) Get(key string, dest any) (bool, error) {

	data, found, err := f.GetRaw(key)
	if err != nil || !found {
		return found, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal stored value for key %s: %w", key, err)
	}

	return true, nil
}

// GetRaw returns the stored bytes without decoding, so callers can shape-check
// a snapshot before trusting it.
func (f *fileStore) GetRaw(key string) ([]byte, bool, error) {

	data, err := os.ReadFile(f.path(key))
	if err != nil {

		if os.IsNotExist(err) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}

	return data, true, nil
}

func (f *fileStore) Set(key string, value any) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	// Write-then-rename keeps a crash from leaving a truncated snapshot.
	tmp := f.path(key) + ".tmp"

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}

	return nil
}

func (f *fileStore) Delete(key string) error {

	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}

func (f *fileStore) Close() error {
	return nil
}
