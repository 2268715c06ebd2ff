// Package store persists small pieces of client-local state, the
// bearer token and continue-watching bookmarks, behind the app.Store
// capability.
package store

import (
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DiskStore is an app.Store backed by diskv, one file per key under
// the configured base path. Keys may contain '/' which maps to
// directories on disk.
type DiskStore struct {
	d *diskv.Diskv
}

// New creates a DiskStore rooted at basePath.
func New(basePath string) *DiskStore {
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPath,
		InverseTransform:  pathToKey,
		CacheSizeMax:      64 * 1024,
	})}
}

func keyToPath(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKey(pk *diskv.PathKey) string {
	if len(pk.Path) == 0 {
		return pk.FileName
	}
	return strings.Join(pk.Path, "/") + "/" + pk.FileName
}

// Get returns the value for key and whether it exists.
func (s *DiskStore) Get(key string) (string, bool, error) {
	if !s.d.Has(key) {
		return "", false, nil
	}
	data, err := s.d.Read(key)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes the value for key, replacing any previous one.
func (s *DiskStore) Set(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Clear removes key. Clearing a missing key is not an error.
func (s *DiskStore) Clear(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("erasing %s: %w", key, err)
	}
	return nil
}
