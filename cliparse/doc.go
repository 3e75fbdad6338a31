// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8741)
  - StoreType: Snapshot backend, file/sqlite/postgres (default: file)
  - StorePath: File path, sqlite path, or postgres URL
  - PersistInterval: Snapshot write interval (default: 30s)
  - SweepInterval: Eviction sweep interval (default: 60s)

# CLI Flags

	-p             Server port
	-t             Store type
	-s             Store path or URL
	-persist-every Snapshot write interval
	-sweep-every   Eviction sweep interval

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	STORE_TYPE       → -t
	STORE_PATH       → -s
	PERSIST_INTERVAL → -persist-every
	SWEEP_INTERVAL   → -sweep-every

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if values are invalid:

  - store type must be file, sqlite, or postgres
  - postgres requires an explicit StorePath URL
  - intervals must be positive durations
*/
package cliparse
