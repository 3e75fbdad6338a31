// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielhkuo/chalkboard/models"
)

// Snapshotter is the in-memory side of the persistence bridge. Snapshot
// must return a deep copy so serialization happens outside all locks.
type Snapshotter interface {
	Snapshot() models.RegistrySnapshot
}

// Persister mirrors the registry to a Store. Writes happen on a fixed
// interval ticker and whenever MarkDirty was called since the last write.
// Save failures are logged and swallowed; the in-memory registry stays
// authoritative until the next successful write.
type Persister struct {
	source   Snapshotter
	store    Store
	interval time.Duration
	dirty    chan struct{}
}

func NewPersister(source Snapshotter, store Store, interval time.Duration) *Persister {
	return &Persister{
		source:   source,
		store:    store,
		interval: interval,
		dirty:    make(chan struct{}, 1),
	}
}

// MarkDirty requests a write soon. Non-blocking; coalesces with any pending
// request.
func (p *Persister) MarkDirty() {
	select {
	case p.dirty <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is cancelled, writing on dirty notifications and on
// every interval tick. A final flush runs on the way out.
func (p *Persister) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.Flush()
			return
		case <-p.dirty:
			p.Flush()
		case <-ticker.C:
			p.Flush()
		}
	}
}

// Flush snapshots the registry and writes it to the store. Snapshot first,
// serialize after: no classroom lock is held during I/O.
func (p *Persister) Flush() {
	snap := p.source.Snapshot()
	if err := p.store.Save(snap); err != nil {
		slog.Warn("snapshot save failed", "error", err, "classrooms", len(snap))
		return
	}
	slog.Debug("snapshot saved", "classrooms", len(snap))
}
