// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry holds the authoritative in-memory classroom state.

# Structure

The Registry maps classroom codes to live classroom state. Two lock levels:
the registry mutex guards the code map (classroom insert/delete), each
classroom's own mutex guards its students, strokes, canvas, and lock flag.
The registry lock is never held across classroom mutation, and no operation
performs I/O while holding either lock.

	reg := registry.New()
	err := reg.Create("MATH1", "Algebra", "Alice", "A1")

Tests inject a clock for deterministic liveness behavior:

	reg := registry.NewWithClock(func() time.Time { return fakeNow })

# Operations

Classroom lifecycle:

	Create(code, name, adminName, adminID) - rejects taken codes
	Join(code, userName, clientID)         - idempotent upsert
	State(code)                            - polling view with stroke tail

Canvas and strokes:

	SaveCanvas(code, callerID, blob)  - admin only
	AppendStroke(code, callerID, req) - lock-gated, touches liveness
	Clear(code, callerID)             - admin, or any student when unlocked
	SetLock(code, callerID, locked)   - admin only

Hands:

	RaiseHand(code, clientID, userName, raised) - self-healing upsert
	ClearHands(code, callerID)                  - admin only

Maintenance:

	Sweep()        - prune idle students, expire old empty classrooms
	ComputeStats() - registry-wide counts and uptime
	Snapshot()     - deep copy for persistence
	Restore(snap)  - rehydrate at startup

# Authorization

Admin-only operations compare the caller against the classroom's admin
identifier, which is fixed at creation and never reassigned. Lock-gated
operations (draw, clear) additionally require a known membership record.
Denials surface as ErrForbidden; unknown callers on stroke appends surface
as ErrUnknownStudent so handlers can distinguish 404 from 403.

# Liveness

Two prune thresholds exist on purpose. State reads prune students idle
beyond 30 seconds as a best-effort freshness pass for roster counts; the
periodic Sweep prunes beyond 60 seconds and is the eviction correctness
actually relies on. Sweep also deletes classrooms that have had zero
students for over 24 hours.
*/
package registry
