// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper runs the eviction pass on a fixed interval. onChange is invoked
// after any pass that removed something, so the persistence bridge can be
// nudged without the registry knowing about storage.
type Sweeper struct {
	reg      *Registry
	interval time.Duration
	onChange func()
}

// NewSweeper creates a sweeper. onChange may be nil.
func NewSweeper(reg *Registry, interval time.Duration, onChange func()) *Sweeper {
	return &Sweeper{reg: reg, interval: interval, onChange: onChange}
}

// Run blocks until ctx is cancelled, sweeping on every tick.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result := s.reg.Sweep()
			if result.StudentsRemoved > 0 || result.ClassroomsRemoved > 0 {
				slog.Info("sweep completed",
					"students_removed", result.StudentsRemoved,
					"classrooms_removed", result.ClassroomsRemoved,
				)
				if s.onChange != nil {
					s.onChange()
				}
			}
		}
	}
}
