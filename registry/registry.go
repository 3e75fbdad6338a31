// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/chalkboard/models"
)

// Registry is the authoritative in-memory mapping from classroom code to
// classroom state. The registry mutex guards only the map itself; each
// classroom carries its own mutex for its mutable state. When both locks
// are needed the registry lock is acquired first, never the reverse, and
// no I/O happens under either.
type Registry struct {
	mu         sync.RWMutex
	classrooms map[string]*classroom

	now       func() time.Time
	startedAt time.Time
}

// classroom is one live session. All fields are guarded by mu.
type classroom struct {
	mu sync.Mutex

	code         string
	name         string
	adminID      string
	locked       bool
	createdAt    time.Time
	lastModified time.Time

	canvas   *string
	strokes  []models.Stroke
	students map[string]*models.Student
}

// New creates an empty registry using the wall clock.
func New() *Registry {
	return NewWithClock(time.Now)
}

// NewWithClock creates a registry with an injected clock. Tests use this to
// make liveness thresholds deterministic.
func NewWithClock(now func() time.Time) *Registry {
	return &Registry{
		classrooms: make(map[string]*classroom),
		now:        now,
		startedAt:  now(),
	}
}

// Create inserts a new classroom with the caller as its sole admin and
// first student. Codes are case-sensitive and unique across the registry;
// a taken code is rejected with ErrClassroomExists rather than silently
// overwritten.
func (r *Registry) Create(code, name, adminName, adminID string) error {
	now := r.now()

	c := &classroom{
		code:         code,
		name:         name,
		adminID:      adminID,
		createdAt:    now,
		lastModified: now,
		students: map[string]*models.Student{
			adminID: {
				ClientID: adminID,
				Name:     adminName,
				IsAdmin:  true,
				LastSeen: now,
			},
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classrooms[code]; exists {
		return ErrClassroomExists
	}
	r.classrooms[code] = c

	slog.Info("classroom created", "code", code, "name", name, "admin", adminID)
	return nil
}

// get looks up a classroom under the registry read lock.
func (r *Registry) get(code string) (*classroom, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classrooms[code]
	if !ok {
		return nil, ErrClassroomNotFound
	}
	return c, nil
}

// JoinResult is what a joining client needs to render immediately.
type JoinResult struct {
	Name           string
	Locked         bool
	CanvasSnapshot *string
}

// Join inserts or refreshes a student record. Re-joining with the same
// client ID is idempotent: the record is overwritten, the roster does not
// grow. The admin flag is derived from the classroom's fixed admin
// identifier, so only the creator ever carries it, even across re-joins.
func (r *Registry) Join(code, userName, clientID string) (JoinResult, error) {
	c, err := r.get(code)
	if err != nil {
		return JoinResult{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.students[clientID] = &models.Student{
		ClientID: clientID,
		Name:     userName,
		IsAdmin:  clientID == c.adminID,
		LastSeen: r.now(),
	}

	slog.Info("student joined", "code", code, "client_id", clientID, "name", userName)
	return JoinResult{Name: c.name, Locked: c.locked, CanvasSnapshot: c.canvas}, nil
}

// Stats is the registry-wide aggregate report.
type Stats struct {
	TotalClassrooms  int
	ActiveClassrooms int
	TotalStudents    int
	Uptime           time.Duration
}

// ComputeStats makes a single read-only pass over the registry. A classroom
// counts as active when it has at least one student.
func (r *Registry) ComputeStats() Stats {
	r.mu.RLock()
	rooms := make([]*classroom, 0, len(r.classrooms))
	for _, c := range r.classrooms {
		rooms = append(rooms, c)
	}
	r.mu.RUnlock()

	stats := Stats{
		TotalClassrooms: len(rooms),
		Uptime:          r.now().Sub(r.startedAt),
	}
	for _, c := range rooms {
		c.mu.Lock()
		n := len(c.students)
		c.mu.Unlock()

		if n > 0 {
			stats.ActiveClassrooms++
		}
		stats.TotalStudents += n
	}
	return stats
}

// Snapshot deep-copies every classroom for persistence. Each classroom is
// copied under its own lock, so no record is observed mid-mutation; the
// caller serializes the result without holding any registry state.
func (r *Registry) Snapshot() models.RegistrySnapshot {
	r.mu.RLock()
	rooms := make([]*classroom, 0, len(r.classrooms))
	for _, c := range r.classrooms {
		rooms = append(rooms, c)
	}
	r.mu.RUnlock()

	snap := make(models.RegistrySnapshot, len(rooms))
	for _, c := range rooms {
		c.mu.Lock()
		rec := models.ClassroomRecord{
			Code:           c.code,
			Name:           c.name,
			AdminID:        c.adminID,
			Locked:         c.locked,
			CreatedAt:      c.createdAt,
			LastModified:   c.lastModified,
			CanvasSnapshot: c.canvas,
			Strokes:        append([]models.Stroke(nil), c.strokes...),
			Students:       make(map[string]models.Student, len(c.students)),
		}
		for id, s := range c.students {
			rec.Students[id] = *s
		}
		c.mu.Unlock()

		snap[rec.Code] = rec
	}
	return snap
}

// Restore rehydrates the registry from a persisted snapshot. Called once at
// startup before any requests are served.
func (r *Registry) Restore(snap models.RegistrySnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for code, rec := range snap {
		c := &classroom{
			code:         rec.Code,
			name:         rec.Name,
			adminID:      rec.AdminID,
			locked:       rec.Locked,
			createdAt:    rec.CreatedAt,
			lastModified: rec.LastModified,
			canvas:       rec.CanvasSnapshot,
			strokes:      append([]models.Stroke(nil), rec.Strokes...),
			students:     make(map[string]*models.Student, len(rec.Students)),
		}
		for id, s := range rec.Students {
			student := s
			c.students[id] = &student
		}
		r.classrooms[code] = c
	}

	if len(snap) > 0 {
		slog.Info("registry restored", "classrooms", len(snap))
	}
}
