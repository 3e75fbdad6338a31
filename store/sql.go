// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/chalkboard/models"
)

// SQLStore keeps the same key→document shape as the file store, one row
// per classroom with the record as a JSON column. Works against sqlite
// (cgo-free modernc driver) and postgres.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens the database, verifies the connection, and ensures the
// schema exists. driver is "sqlite" or "postgres"; dsn is a file path for
// sqlite or a connection string for postgres.
func OpenSQL(driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s store: %w", driver, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS classroom (
			code  TEXT PRIMARY KEY,
			state TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Load() (models.RegistrySnapshot, error) {
	rows, err := s.db.Query(`SELECT code, state FROM classroom`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	snap := models.RegistrySnapshot{}
	for rows.Next() {
		var code, state string
		if err := rows.Scan(&code, &state); err != nil {
			return nil, fmt.Errorf("failed to scan classroom row: %w", err)
		}
		var rec models.ClassroomRecord
		if err := json.Unmarshal([]byte(state), &rec); err != nil {
			return nil, fmt.Errorf("failed to parse classroom %s: %w", code, err)
		}
		snap[code] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot rows: %w", err)
	}
	return snap, nil
}

func (s *SQLStore) Save(snap models.RegistrySnapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM classroom`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	for code, rec := range snap {
		state, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode classroom %s: %w", code, err)
		}
		if _, err := tx.Exec(`INSERT INTO classroom (code, state) VALUES ($1, $2)`, code, string(state)); err != nil {
			return fmt.Errorf("failed to insert classroom %s: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
