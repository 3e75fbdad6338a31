// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"log/slog"
	"time"

	"github.com/danielhkuo/chalkboard/models"
)

// pruneLocked removes students idle beyond threshold. Caller holds c.mu.
func (c *classroom) pruneLocked(now time.Time, threshold time.Duration) int {
	removed := 0
	for id, s := range c.students {
		if now.Sub(s.LastSeen) > threshold {
			delete(c.students, id)
			removed++
		}
	}
	return removed
}

// SweepResult reports what one eviction pass removed.
type SweepResult struct {
	StudentsRemoved   int
	ClassroomsRemoved int
}

// Sweep runs one eviction pass: students idle beyond SweepPruneThreshold
// are removed from every classroom, then classrooms left with zero students
// and older than EmptyClassroomMaxAge are deleted. A classroom that still
// has students is never deleted, however old. The pass is stateless and
// idempotent; each classroom's lock is taken and released individually, and
// the registry lock is only taken for the final map deletions.
func (r *Registry) Sweep() SweepResult {
	now := r.now()

	r.mu.RLock()
	rooms := make([]*classroom, 0, len(r.classrooms))
	for _, c := range r.classrooms {
		rooms = append(rooms, c)
	}
	r.mu.RUnlock()

	var result SweepResult
	var expired []string
	for _, c := range rooms {
		c.mu.Lock()
		result.StudentsRemoved += c.pruneLocked(now, models.SweepPruneThreshold)
		if len(c.students) == 0 && now.Sub(c.createdAt) > models.EmptyClassroomMaxAge {
			expired = append(expired, c.code)
		}
		c.mu.Unlock()
	}

	if len(expired) > 0 {
		r.mu.Lock()
		for _, code := range expired {
			c, ok := r.classrooms[code]
			if !ok {
				continue
			}
			// Recheck: a student may have joined between the scan and now.
			c.mu.Lock()
			empty := len(c.students) == 0
			c.mu.Unlock()
			if empty {
				delete(r.classrooms, code)
				result.ClassroomsRemoved++
				slog.Info("classroom expired", "code", code)
			}
		}
		r.mu.Unlock()
	}

	return result
}
