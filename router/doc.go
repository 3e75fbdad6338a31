// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Chalkboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(reg, persister.MarkDirty)

# Endpoints

Health:

	GET /health

Classroom lifecycle:

	POST /classrooms                - Create classroom (caller is admin)
	POST /classrooms/{code}/join    - Join by code
	GET  /classrooms/{code}/state   - Polling endpoint: roster, canvas,
	                                  stroke tail

Canvas (callers identify via client_id in the body):

	POST /classrooms/{code}/canvas  - Save full snapshot (admin)
	POST /classrooms/{code}/strokes - Append a stroke
	POST /classrooms/{code}/clear   - Clear canvas and stroke log
	POST /classrooms/{code}/lock    - Lock/unlock drawing (admin)

Hands:

	POST /classrooms/{code}/hand        - Raise or lower hand
	POST /classrooms/{code}/hands/clear - Lower all hands (admin)

Stats:

	GET /stats

# Handler Initialization

The router creates handler instances with dependency injection:

	classroomHandler := handlers.NewClassroomHandler(reg, markDirty)
	canvasHandler := handlers.NewCanvasHandler(reg, markDirty)
	handsHandler := handlers.NewHandsHandler(reg, markDirty)
	statsHandler := handlers.NewStatsHandler(reg)

All mutating handlers receive the persistence dirty callback.
*/
package router
