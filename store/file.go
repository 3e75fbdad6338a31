// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielhkuo/chalkboard/models"
)

// FileStore persists the snapshot as one JSON document. Writes go to a
// temp file in the same directory followed by a rename, so a crash
// mid-write never leaves a truncated snapshot behind.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (models.RegistrySnapshot, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return models.RegistrySnapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", f.path, err)
	}

	var snap models.RegistrySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", f.path, err)
	}
	return snap, nil
}

func (f *FileStore) Save(snap models.RegistrySnapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".chalkboard-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
