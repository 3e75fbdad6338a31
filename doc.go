// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Chalkboard API server.

Chalkboard is a polling-based collaborative classroom whiteboard backend:
clients create or join a classroom by code, the creator controls a shared
canvas as admin, and everyone polls for roster, canvas, and recent stroke
updates. There are no persistent connections; the system is strictly
request/response.

# Starting the Server

The server runs with defaults out of the box:

	go run .

Or with flags:

	go run . -p 8741 -t sqlite -s ./chalkboard.db

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 8741)
  - STORE_TYPE (-t): Snapshot backend, file/sqlite/postgres (default: file)
  - STORE_PATH (-s): File path or database URL
  - PERSIST_INTERVAL (-persist-every): Snapshot write interval (default: 30s)
  - SWEEP_INTERVAL (-sweep-every): Eviction sweep interval (default: 60s)

A .env file is loaded when present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - registry: In-memory classroom state, authorization, liveness sweep
  - store: Durable snapshots (file, sqlite, or postgres) and the
    persistence bridge
  - handlers: HTTP request handlers (classrooms, canvas, hands, stats)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - cliparse: Configuration parsing

State lives in the registry; the store mirrors it on an interval, after
mutations, and on shutdown. Persistence failures are logged and swallowed,
so a broken disk degrades durability, never availability.

See package documentation for each component.
*/
package main
