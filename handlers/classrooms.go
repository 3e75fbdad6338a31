// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/chalkboard/middleware"
	"github.com/danielhkuo/chalkboard/models"
	"github.com/danielhkuo/chalkboard/registry"
)

type ClassroomHandler struct {
	reg       *registry.Registry
	markDirty func()
}

// NewClassroomHandler creates the handler. markDirty may be nil.
func NewClassroomHandler(reg *registry.Registry, markDirty func()) *ClassroomHandler {
	if markDirty == nil {
		markDirty = func() {}
	}
	return &ClassroomHandler{reg: reg, markDirty: markDirty}
}

// Create handles POST /classrooms
func (h *ClassroomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClassroomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.AdminName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "admin_name is required")
		return
	}
	if req.ClientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")
		return
	}

	if err := h.reg.Create(req.Code, req.Name, req.AdminName, req.ClientID); err != nil {
		if errors.Is(err, registry.ErrClassroomExists) {
			middleware.ErrorResponse(w, http.StatusConflict, "Classroom code already taken")
			return
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create classroom")
		return
	}
	h.markDirty()

	middleware.JSONResponse(w, http.StatusCreated, models.CreateClassroomResponse{
		Success: true,
		Code:    req.Code,
		Name:    req.Name,
	})
}

// Join handles POST /classrooms/{code}/join
func (h *ClassroomHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	var req models.JoinClassroomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_name is required")
		return
	}
	if req.ClientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")
		return
	}

	result, err := h.reg.Join(code, req.UserName, req.ClientID)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Classroom not found")
		return
	}
	h.markDirty()

	middleware.JSONResponse(w, http.StatusOK, models.JoinClassroomResponse{
		Success:        true,
		Name:           result.Name,
		Locked:         result.Locked,
		CanvasSnapshot: result.CanvasSnapshot,
	})
}

// State handles GET /classrooms/{code}/state
// This is the polling endpoint: clients call it on an interval and render
// the roster, canvas snapshot, and recent stroke tail it returns.
func (h *ClassroomHandler) State(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	state, err := h.reg.State(code)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Classroom not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, state)
}
