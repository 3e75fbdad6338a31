// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store handles durable snapshots of the classroom registry.

# Shape

The persisted state is a flat map from classroom code to the full classroom
record (attributes, student map, strokes, canvas). It is written whole on a
fixed interval, after mutation events, and on shutdown, and read once at
process start.

# Backends

Three interchangeable backends behind the Store interface:

  - FileStore: one JSON document, atomic temp-file-plus-rename writes.
    The default.
  - SQLStore over sqlite: one row per classroom, record as JSON text,
    using the cgo-free modernc.org/sqlite driver.
  - SQLStore over postgres: same table shape via lib/pq.

Selection happens in Open from cliparse config:

	st, err := store.Open(cfg)

# Persistence Bridge

Persister connects a Snapshotter (the registry) to a Store:

	p := store.NewPersister(reg, st, cfg.PersistInterval)
	go p.Run(ctx)

Handlers call p.MarkDirty() after mutations; notifications coalesce, and
every write snapshots first so no registry lock is held during I/O.
Failures are logged and swallowed - durability is best-effort, the
in-memory registry stays authoritative.
*/
package store
