// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"

	"github.com/danielhkuo/chalkboard/cliparse"
	"github.com/danielhkuo/chalkboard/models"
)

// Store is the durable side of the persistence bridge: a flat code→record
// map written whole and read once at startup. Durability is best-effort;
// callers log and swallow failures, in-memory state stays authoritative.
type Store interface {
	// Load reads the full snapshot. A missing store is not an error; it
	// returns an empty snapshot.
	Load() (models.RegistrySnapshot, error)

	// Save replaces the stored snapshot wholesale.
	Save(models.RegistrySnapshot) error

	Close() error
}

// Open picks a backend from config: "file" (default), "sqlite", or
// "postgres".
func Open(cfg cliparse.Config) (Store, error) {
	switch cfg.StoreType {
	case cliparse.StoreFile:
		return NewFileStore(cfg.StorePath), nil
	case cliparse.StoreSQLite:
		return OpenSQL("sqlite", cfg.StorePath)
	case cliparse.StorePostgres:
		return OpenSQL("postgres", cfg.StorePath)
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}
}
