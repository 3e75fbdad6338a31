// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/danielhkuo/chalkboard/models"
)

// Authorization policy. Admin-only actions require the caller to be the
// classroom's fixed admin identifier; lock-gated actions require a known
// caller and either an unlocked classroom or the admin. Both helpers assume
// the classroom lock is held.

func (c *classroom) isAdmin(callerID string) bool {
	return callerID == c.adminID
}

// mayDraw evaluates the lock gate for stroke appends. An unknown caller is
// distinguished from a locked-out one so handlers can report NotFound
// versus Forbidden.
func (c *classroom) mayDraw(callerID string) error {
	if _, known := c.students[callerID]; !known {
		return ErrUnknownStudent
	}
	if c.locked && !c.isAdmin(callerID) {
		return ErrForbidden
	}
	return nil
}

// mayClear evaluates the lock gate for canvas clears: the admin always,
// any known student while unlocked.
func (c *classroom) mayClear(callerID string) error {
	if c.isAdmin(callerID) {
		return nil
	}
	if _, known := c.students[callerID]; !known || c.locked {
		return ErrForbidden
	}
	return nil
}

// SaveCanvas replaces the full canvas snapshot. Admin-only. The stroke log
// is left untouched.
func (r *Registry) SaveCanvas(code, callerID, blob string) error {
	c, err := r.get(code)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isAdmin(callerID) {
		return ErrForbidden
	}
	c.canvas = &blob
	c.lastModified = r.now()

	slog.Info("canvas saved", "code", code, "bytes", len(blob))
	return nil
}

// AppendStroke records one draw segment. The caller must be a known
// student; while locked, only the admin may draw. On success the caller's
// liveness is refreshed and the log head is evicted once storage exceeds
// MaxStoredStrokes. The stored stroke, with its server-assigned ID and
// timestamp, is returned.
func (r *Registry) AppendStroke(code, callerID string, req models.AppendStrokeRequest) (models.Stroke, error) {
	c, err := r.get(code)
	if err != nil {
		return models.Stroke{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mayDraw(callerID); err != nil {
		return models.Stroke{}, err
	}

	now := r.now()
	c.students[callerID].LastSeen = now

	stroke := models.Stroke{
		ID:        uuid.New().String(),
		ClientID:  callerID,
		X0:        req.X0,
		Y0:        req.Y0,
		X1:        req.X1,
		Y1:        req.Y1,
		Color:     req.Color,
		Size:      req.Size,
		Tool:      req.Tool,
		Timestamp: now,
	}
	c.strokes = append(c.strokes, stroke)
	if len(c.strokes) > models.MaxStoredStrokes {
		c.strokes = c.strokes[len(c.strokes)-models.MaxStoredStrokes:]
	}
	c.lastModified = now

	return stroke, nil
}

// Clear wipes both the canvas snapshot and the entire stroke log. Allowed
// for the admin always, and for any known student while the classroom is
// unlocked.
func (r *Registry) Clear(code, callerID string) error {
	c, err := r.get(code)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mayClear(callerID); err != nil {
		return err
	}
	c.canvas = nil
	c.strokes = nil
	c.lastModified = r.now()

	slog.Info("canvas cleared", "code", code, "by", callerID)
	return nil
}

// SetLock flips the classroom lock. Admin-only.
func (r *Registry) SetLock(code, callerID string, locked bool) error {
	c, err := r.get(code)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isAdmin(callerID) {
		return ErrForbidden
	}
	c.locked = locked

	slog.Info("lock changed", "code", code, "locked", locked)
	return nil
}

// RaiseHand sets or clears the caller's hand flag. An unknown client ID is
// upserted as a fresh record carrying the requested hand state, so a
// student whose join was lost to an eviction heals itself on the next
// raise. One code path for both cases.
func (r *Registry) RaiseHand(code, clientID, userName string, raised bool) error {
	c, err := r.get(code)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.students[clientID]
	if !ok {
		s = &models.Student{
			ClientID: clientID,
			Name:     userName,
			IsAdmin:  clientID == c.adminID,
		}
		c.students[clientID] = s
	}
	s.HandRaised = raised
	s.LastSeen = r.now()
	return nil
}

// ClearHands lowers every student's hand. Admin-only.
func (r *Registry) ClearHands(code, callerID string) error {
	c, err := r.get(code)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isAdmin(callerID) {
		return ErrForbidden
	}
	for _, s := range c.students {
		s.HandRaised = false
	}
	return nil
}

// State returns the polling view of a classroom: roster, lock flag, canvas
// snapshot, and the most recent stroke tail (at most ServedStrokeTail of
// the stored log). Students idle beyond ReadPruneThreshold are dropped
// opportunistically first; that prune is a UI freshness pass only, the
// sweep remains authoritative.
func (r *Registry) State(code string) (models.ClassroomStateResponse, error) {
	c, err := r.get(code)
	if err != nil {
		return models.ClassroomStateResponse{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked(r.now(), models.ReadPruneThreshold)

	roster := make([]models.RosterEntry, 0, len(c.students))
	for _, s := range c.students {
		roster = append(roster, models.RosterEntry{
			ClientID:   s.ClientID,
			Name:       s.Name,
			IsAdmin:    s.IsAdmin,
			HandRaised: s.HandRaised,
		})
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].ClientID < roster[j].ClientID })

	tail := c.strokes
	if len(tail) > models.ServedStrokeTail {
		tail = tail[len(tail)-models.ServedStrokeTail:]
	}
	strokes := make([]models.Stroke, len(tail))
	copy(strokes, tail)

	return models.ClassroomStateResponse{
		Name:           c.name,
		Locked:         c.locked,
		Roster:         roster,
		CanvasSnapshot: c.canvas,
		LastModified:   c.lastModified,
		Strokes:        strokes,
	}, nil
}
