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

type CanvasHandler struct {
	reg       *registry.Registry
	markDirty func()
}

// NewCanvasHandler creates the handler. markDirty may be nil.
func NewCanvasHandler(reg *registry.Registry, markDirty func()) *CanvasHandler {
	if markDirty == nil {
		markDirty = func() {}
	}
	return &CanvasHandler{reg: reg, markDirty: markDirty}
}

// SaveCanvas handles POST /classrooms/{code}/canvas
// Admin-only: replaces the full canvas snapshot.
func (h *CanvasHandler) SaveCanvas(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	var req models.SaveCanvasRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ClientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")
		return
	}
	if req.Canvas == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "canvas is required")
		return
	}

	if err := h.reg.SaveCanvas(code, req.ClientID, req.Canvas); err != nil {
		writeRegistryError(w, err)
		return
	}
	h.markDirty()

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// AppendStroke handles POST /classrooms/{code}/strokes
func (h *CanvasHandler) AppendStroke(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	var req models.AppendStrokeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ClientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")
		return
	}
	if req.Color == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "color is required")
		return
	}
	if req.Tool == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "tool is required")
		return
	}
	if req.Size <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "size must be positive")
		return
	}

	if _, err := h.reg.AppendStroke(code, req.ClientID, req); err != nil {
		writeRegistryError(w, err)
		return
	}
	h.markDirty()

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Clear handles POST /classrooms/{code}/clear
// Wipes both the canvas snapshot and the stroke log. Allowed for the admin,
// or for any known student while the classroom is unlocked.
func (h *CanvasHandler) Clear(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	var req models.ClearCanvasRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ClientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")
		return
	}

	if err := h.reg.Clear(code, req.ClientID); err != nil {
		writeRegistryError(w, err)
		return
	}
	h.markDirty()

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// SetLock handles POST /classrooms/{code}/lock
// Admin-only: while locked, only the admin may draw or clear.
func (h *CanvasHandler) SetLock(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	var req models.SetLockRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ClientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")
		return
	}

	if err := h.reg.SetLock(code, req.ClientID, req.Locked); err != nil {
		writeRegistryError(w, err)
		return
	}
	h.markDirty()

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// writeRegistryError maps registry sentinels to HTTP statuses. Unknown
// classrooms and unknown students are 404, policy denials are 403.
func writeRegistryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrClassroomNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Classroom not found")
	case errors.Is(err, registry.ErrUnknownStudent):
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown student")
	case errors.Is(err, registry.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "Not allowed")
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
