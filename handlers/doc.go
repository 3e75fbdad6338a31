// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Chalkboard API.

# Handler Types

Each handler is a struct with registry and dirty-callback dependencies:

  - ClassroomHandler: Create, join, and poll classroom state
  - CanvasHandler: Canvas snapshot, strokes, clear, lock
  - HandsHandler: Hand raising and admin hand clearing
  - StatsHandler: Registry-wide counts

Handlers are created via constructor functions:

	classroomHandler := handlers.NewClassroomHandler(reg, persister.MarkDirty)

The markDirty callback nudges the persistence bridge after every mutation.

# Polling Flow

Clients poll GET /classrooms/{code}/state on an interval and render the
roster, canvas snapshot, and recent stroke tail. Everything else is a
mutation:

	POST /classrooms                    → Create (caller becomes admin)
	POST /classrooms/{code}/join        → Join (idempotent)
	POST /classrooms/{code}/strokes     → AppendStroke
	POST /classrooms/{code}/canvas      → SaveCanvas (admin)
	POST /classrooms/{code}/clear       → Clear
	POST /classrooms/{code}/lock        → SetLock (admin)
	POST /classrooms/{code}/hand        → RaiseHand
	POST /classrooms/{code}/hands/clear → ClearHands (admin)

# Authorization

Callers identify themselves with an opaque client_id in the request body.
The registry enforces policy; handlers translate its sentinels:

	ErrClassroomNotFound → 404
	ErrUnknownStudent    → 404
	ErrForbidden         → 403
	ErrClassroomExists   → 409

Missing or malformed fields are rejected with 400 before any business
logic runs.
*/
package handlers
