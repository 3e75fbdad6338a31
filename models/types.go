// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Stroke log bounds. The log stores more than it serves so a client that
// polls late still sees recent context without unbounded memory growth.
const (
	MaxStoredStrokes = 100
	ServedStrokeTail = 50
)

// Liveness thresholds. The read-path prune is a best-effort UI freshness
// pass; the sweep prune is the one eviction actually relies on.
const (
	ReadPruneThreshold  = 30 * time.Second
	SweepPruneThreshold = 60 * time.Second
)

// EmptyClassroomMaxAge is how long a classroom with zero students may exist
// before the sweep deletes it.
const EmptyClassroomMaxAge = 24 * time.Hour

// Tool kind constants
const (
	ToolPen    = "pen"
	ToolEraser = "eraser"
)

// Request types

type CreateClassroomRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	AdminName string `json:"admin_name"`
	ClientID  string `json:"client_id"`
}

type JoinClassroomRequest struct {
	UserName string `json:"user_name"`
	ClientID string `json:"client_id"`
}

type SaveCanvasRequest struct {
	ClientID string `json:"client_id"`
	Canvas   string `json:"canvas"`
}

type AppendStrokeRequest struct {
	ClientID string  `json:"client_id"`
	X0       float64 `json:"x0"`
	Y0       float64 `json:"y0"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	Color    string  `json:"color"`
	Size     float64 `json:"size"`
	Tool     string  `json:"tool"`
}

type ClearCanvasRequest struct {
	ClientID string `json:"client_id"`
}

type SetLockRequest struct {
	ClientID string `json:"client_id"`
	Locked   bool   `json:"locked"`
}

type RaiseHandRequest struct {
	ClientID string `json:"client_id"`
	UserName string `json:"user_name"`
	Raised   bool   `json:"raised"`
}

type ClearHandsRequest struct {
	ClientID string `json:"client_id"`
}

// Response types

type CreateClassroomResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Name    string `json:"name"`
}

type JoinClassroomResponse struct {
	Success        bool    `json:"success"`
	Name           string  `json:"name"`
	Locked         bool    `json:"locked"`
	CanvasSnapshot *string `json:"canvas_snapshot"`
}

type ClassroomStateResponse struct {
	Name           string        `json:"name"`
	Locked         bool          `json:"locked"`
	Roster         []RosterEntry `json:"roster"`
	CanvasSnapshot *string       `json:"canvas_snapshot"`
	LastModified   time.Time     `json:"last_modified"`
	Strokes        []Stroke      `json:"strokes"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type StatsResponse struct {
	TotalClassrooms  int    `json:"total_classrooms"`
	ActiveClassrooms int    `json:"active_classrooms"`
	TotalStudents    int    `json:"total_students"`
	UptimeSeconds    int64  `json:"uptime_seconds"`
	Uptime           string `json:"uptime"`
}

// RosterEntry is the externally visible view of a student. LastSeen is
// deliberately omitted; liveness is a server-side concern.
type RosterEntry struct {
	ClientID   string `json:"client_id"`
	Name       string `json:"name"`
	IsAdmin    bool   `json:"is_admin"`
	HandRaised bool   `json:"hand_raised"`
}

// Domain types

// Stroke is one incremental draw operation. Immutable after insertion; the
// ID is server-assigned so polling clients can deduplicate strokes they
// have already rendered.
type Stroke struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	X0        float64   `json:"x0"`
	Y0        float64   `json:"y0"`
	X1        float64   `json:"x1"`
	Y1        float64   `json:"y1"`
	Color     string    `json:"color"`
	Size      float64   `json:"size"`
	Tool      string    `json:"tool"`
	Timestamp time.Time `json:"timestamp"`
}

// Student is a membership record within a classroom. ClientID is unique
// within a classroom, not globally.
type Student struct {
	ClientID   string    `json:"client_id"`
	Name       string    `json:"name"`
	IsAdmin    bool      `json:"is_admin"`
	HandRaised bool      `json:"hand_raised"`
	LastSeen   time.Time `json:"last_seen"`
}

// Persistence types

// ClassroomRecord is the durable shape of one classroom: every attribute
// plus the full student map, strokes, and canvas. Round-tripping a record
// through a store must reproduce codes, names, admin IDs, lock flags, and
// student rosters exactly.
type ClassroomRecord struct {
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	AdminID        string             `json:"admin_id"`
	Locked         bool               `json:"locked"`
	CreatedAt      time.Time          `json:"created_at"`
	LastModified   time.Time          `json:"last_modified"`
	CanvasSnapshot *string            `json:"canvas_snapshot"`
	Strokes        []Stroke           `json:"strokes"`
	Students       map[string]Student `json:"students"`
}

// RegistrySnapshot is the full persisted state: classroom code → record.
type RegistrySnapshot map[string]ClassroomRecord

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
