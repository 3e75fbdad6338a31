// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/danielhkuo/chalkboard/models"
)

func pen() models.AppendStrokeRequest {
	return models.AppendStrokeRequest{
		X0: 0, Y0: 0, X1: 10, Y1: 10, Color: "#000000", Size: 2, Tool: models.ToolPen,
	}
}

func TestAppendStrokeAuthorization(t *testing.T) {
	tests := []struct {
		name    string
		locked  bool
		caller  string
		wantErr error
	}{
		{name: "student draws while unlocked", locked: false, caller: "B1", wantErr: nil},
		{name: "admin draws while unlocked", locked: false, caller: "A1", wantErr: nil},
		{name: "student draws while locked", locked: true, caller: "B1", wantErr: ErrForbidden},
		{name: "admin draws while locked", locked: true, caller: "A1", wantErr: nil},
		{name: "unknown caller", locked: false, caller: "X1", wantErr: ErrUnknownStudent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newTestRegistry(t)
			reg.Create("MATH1", "Algebra", "Alice", "A1")
			reg.Join("MATH1", "Bob", "B1")
			if tt.locked {
				reg.SetLock("MATH1", "A1", true)
			}

			_, err := reg.AppendStroke("MATH1", tt.caller, pen())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRejectedStrokeNotServed(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.Create("MATH1", "Algebra", "Alice", "A1")
	reg.Join("MATH1", "Bob", "B1")
	reg.SetLock("MATH1", "A1", true)

	if _, err := reg.AppendStroke("MATH1", "B1", pen()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("Expected ErrForbidden, got %v", err)
	}

	state, _ := reg.State("MATH1")
	if len(state.Strokes) != 0 {
		t.Errorf("Rejected stroke appeared in state: %d strokes", len(state.Strokes))
	}
}

func TestStrokeLogBounds(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.Create("MATH1", "Algebra", "Alice", "A1")

	for i := 0; i < 250; i++ {
		req := pen()
		req.X0 = float64(i)
		if _, err := reg.AppendStroke("MATH1", "A1", req); err != nil {
			t.Fatalf("AppendStroke %d failed: %v", i, err)
		}
	}

	// Stored log is capped at MaxStoredStrokes
	snap := reg.Snapshot()
	stored := snap["MATH1"].Strokes
	if len(stored) != models.MaxStoredStrokes {
		t.Errorf("Expected %d stored strokes, got %d", models.MaxStoredStrokes, len(stored))
	}

	// Served tail is capped independently at ServedStrokeTail
	state, _ := reg.State("MATH1")
	if len(state.Strokes) != models.ServedStrokeTail {
		t.Errorf("Expected %d served strokes, got %d", models.ServedStrokeTail, len(state.Strokes))
	}

	// Eviction is from the head: the tail holds the most recent strokes
	last := state.Strokes[len(state.Strokes)-1]
	if last.X0 != 249 {
		t.Errorf("Expected newest stroke last (x0=249), got x0=%v", last.X0)
	}
	first := state.Strokes[0]
	if first.X0 != 200 {
		t.Errorf("Expected tail to start at x0=200, got x0=%v", first.X0)
	}
}

func TestStrokeServerAssignedFields(t *testing.T) {
	reg, clock := newTestRegistry(t)
	reg.Create("MATH1", "Algebra", "Alice", "A1")

	stroke, err := reg.AppendStroke("MATH1", "A1", pen())
	if err != nil {
		t.Fatalf("AppendStroke failed: %v", err)
	}
	if stroke.ID == "" {
		t.Error("Expected server-assigned stroke ID")
	}
	if !stroke.Timestamp.Equal(clock.Now()) {
		t.Errorf("Expected server-assigned timestamp %v, got %v", clock.Now(), stroke.Timestamp)
	}

	other, _ := reg.AppendStroke("MATH1", "A1", pen())
	if other.ID == stroke.ID {
		t.Error("Stroke IDs should be unique")
	}
}

func TestClearAuthorization(t *testing.T) {
	tests := []struct {
		name    string
		locked  bool
		caller  string
		wantErr error
	}{
		{name: "admin clears while unlocked", locked: false, caller: "A1", wantErr: nil},
		{name: "admin clears while locked", locked: true, caller: "A1", wantErr: nil},
		{name: "student clears while unlocked", locked: false, caller: "B1", wantErr: nil},
		{name: "student clears while locked", locked: true, caller: "B1", wantErr: ErrForbidden},
		{name: "unknown caller", locked: false, caller: "X1", wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newTestRegistry(t)
			reg.Create("MATH1", "Algebra", "Alice", "A1")
			reg.Join("MATH1", "Bob", "B1")
			if tt.locked {
				reg.SetLock("MATH1", "A1", true)
			}

			err := reg.Clear("MATH1", tt.caller)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestClearWipesCanvasAndStrokes(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.Create("MATH1", "Algebra", "Alice", "A1")
	reg.SaveCanvas("MATH1", "A1", "big-canvas-blob")
	for i := 0; i < 60; i++ {
		reg.AppendStroke("MATH1", "A1", pen())
	}

	if err := reg.Clear("MATH1", "A1"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	state, _ := reg.State("MATH1")
	if state.CanvasSnapshot != nil {
		t.Error("Canvas should be empty after clear")
	}
	if len(state.Strokes) != 0 {
		t.Errorf("Stroke tail should be empty after clear, got %d", len(state.Strokes))
	}
}

func TestSaveCanvasAdminOnly(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.Create("MATH1", "Algebra", "Alice", "A1")
	reg.Join("MATH1", "Bob", "B1")

	if err := reg.SaveCanvas("MATH1", "B1", "blob"); !errors.Is(err, ErrForbidden) {
		t.Errorf("Non-admin save should be forbidden, got %v", err)
	}
	if err := reg.SaveCanvas("MATH1", "A1", "blob"); err != nil {
		t.Errorf("Admin save failed: %v", err)
	}

	state, _ := reg.State("MATH1")
	if state.CanvasSnapshot == nil || *state.CanvasSnapshot != "blob" {
		t.Error("Canvas snapshot not stored")
	}
}

func TestSaveCanvasKeepsStrokes(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.Create("MATH1", "Algebra", "Alice", "A1")
	reg.AppendStroke("MATH1", "A1", pen())

	reg.SaveCanvas("MATH1", "A1", "blob")

	state, _ := reg.State("MATH1")
	if len(state.Strokes) != 1 {
		t.Errorf("SaveCanvas should not touch the stroke log, got %d strokes", len(state.Strokes))
	}
}

func TestSetLockAdminOnly(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.Create("MATH1", "Algebra", "Alice", "A1")
	reg.Join("MATH1", "Bob", "B1")

	if err := reg.SetLock("MATH1", "B1", true); !errors.Is(err, ErrForbidden) {
		t.Errorf("Non-admin lock should be forbidden, got %v", err)
	}
	if err := reg.SetLock("MATH1", "A1", true); err != nil {
		t.Errorf("Admin lock failed: %v", err)
	}

	state, _ := reg.State("MATH1")
	if !state.Locked {
		t.Error("Classroom should be locked")
	}
}

func TestRaiseHandSelfHealingJoin(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.Create("MATH1", "Algebra", "Alice", "A1")

	// Unknown client raises a hand: record is created with the hand up
	if err := reg.RaiseHand("MATH1", "C1", "Carol", true); err != nil {
		t.Fatalf("RaiseHand failed: %v", err)
	}

	state, _ := reg.State("MATH1")
	found := false
	for _, s := range state.Roster {
		if s.ClientID == "C1" {
			found = true
			if !s.HandRaised {
				t.Error("Self-healed record should carry the requested hand state")
			}
			if s.IsAdmin {
				t.Error("Self-healed record must not be admin")
			}
			if s.Name != "Carol" {
				t.Errorf("Expected name 'Carol', got %q", s.Name)
			}
		}
	}
	if !found {
		t.Fatal("RaiseHand did not create a membership record")
	}

	// Lowering flips the flag on the now-known record
	reg.RaiseHand("MATH1", "C1", "Carol", false)
	state, _ = reg.State("MATH1")
	for _, s := range state.Roster {
		if s.ClientID == "C1" && s.HandRaised {
			t.Error("Hand should be lowered")
		}
	}
}

func TestClearHands(t *testing.T) {
	reg, _ := newTestRegistry(t)
	reg.Create("MATH1", "Algebra", "Alice", "A1")
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("S%d", i)
		reg.Join("MATH1", "Student"+id, id)
		reg.RaiseHand("MATH1", id, "", true)
	}

	if err := reg.ClearHands("MATH1", "S0"); !errors.Is(err, ErrForbidden) {
		t.Errorf("Non-admin clear-hands should be forbidden, got %v", err)
	}
	if err := reg.ClearHands("MATH1", "A1"); err != nil {
		t.Fatalf("ClearHands failed: %v", err)
	}

	state, _ := reg.State("MATH1")
	for _, s := range state.Roster {
		if s.HandRaised {
			t.Errorf("Hand still raised for %s", s.ClientID)
		}
	}
}
