// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/chalkboard/handlers"
	"github.com/danielhkuo/chalkboard/middleware"
	"github.com/danielhkuo/chalkboard/registry"
)

// NewRouter wires all endpoints. markDirty is forwarded to every mutating
// handler so the persistence bridge hears about each mutation; it may be
// nil in tests.
func NewRouter(reg *registry.Registry, markDirty func()) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	classroomHandler := handlers.NewClassroomHandler(reg, markDirty)
	canvasHandler := handlers.NewCanvasHandler(reg, markDirty)
	handsHandler := handlers.NewHandsHandler(reg, markDirty)
	statsHandler := handlers.NewStatsHandler(reg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Classroom lifecycle
	mux.HandleFunc("POST /classrooms", middleware.WithLogging(classroomHandler.Create))
	mux.HandleFunc("POST /classrooms/{code}/join", middleware.WithLogging(classroomHandler.Join))
	mux.HandleFunc("GET /classrooms/{code}/state", middleware.WithLogging(classroomHandler.State))

	// Canvas and strokes
	mux.HandleFunc("POST /classrooms/{code}/canvas", middleware.WithLogging(canvasHandler.SaveCanvas))
	mux.HandleFunc("POST /classrooms/{code}/strokes", middleware.WithLogging(canvasHandler.AppendStroke))
	mux.HandleFunc("POST /classrooms/{code}/clear", middleware.WithLogging(canvasHandler.Clear))
	mux.HandleFunc("POST /classrooms/{code}/lock", middleware.WithLogging(canvasHandler.SetLock))

	// Hands
	mux.HandleFunc("POST /classrooms/{code}/hand", middleware.WithLogging(handsHandler.RaiseHand))
	mux.HandleFunc("POST /classrooms/{code}/hands/clear", middleware.WithLogging(handsHandler.ClearHands))

	// Stats
	mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("chalkboard API v1"))
	})

	return mux
}
