// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain, and persistence types.

# Request Types

Types for parsing incoming JSON:

  - CreateClassroomRequest: code, name, admin_name, client_id
  - JoinClassroomRequest: user_name, client_id
  - SaveCanvasRequest: client_id, canvas
  - AppendStrokeRequest: client_id, endpoints, color, size, tool
  - ClearCanvasRequest: client_id
  - SetLockRequest: client_id, locked
  - RaiseHandRequest: client_id, user_name, raised
  - ClearHandsRequest: client_id

# Response Types

Types for JSON responses:

  - CreateClassroomResponse: success, code, name
  - JoinClassroomResponse: success, name, locked, canvas_snapshot
  - ClassroomStateResponse: name, locked, roster, canvas_snapshot,
    last_modified, strokes
  - SuccessResponse: success
  - StatsResponse: total_classrooms, active_classrooms, total_students, uptime
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Stroke: one immutable draw segment with style and server timestamp
  - Student: membership record with admin flag, hand flag, last-seen
  - RosterEntry: externally visible student view (no last-seen)

# Persistence Types

  - ClassroomRecord: full durable shape of one classroom
  - RegistrySnapshot: classroom code → ClassroomRecord

# Constants

Stroke log bounds:

	MaxStoredStrokes = 100
	ServedStrokeTail = 50

Liveness thresholds:

	ReadPruneThreshold  = 30s (best-effort, on state reads)
	SweepPruneThreshold = 60s (authoritative, periodic sweep)
	EmptyClassroomMaxAge = 24h

Tool kinds:

	ToolPen    = "pen"
	ToolEraser = "eraser"
*/
package models
