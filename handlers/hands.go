// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/chalkboard/middleware"
	"github.com/danielhkuo/chalkboard/models"
	"github.com/danielhkuo/chalkboard/registry"
)

type HandsHandler struct {
	reg       *registry.Registry
	markDirty func()
}

// NewHandsHandler creates the handler. markDirty may be nil.
func NewHandsHandler(reg *registry.Registry, markDirty func()) *HandsHandler {
	if markDirty == nil {
		markDirty = func() {}
	}
	return &HandsHandler{reg: reg, markDirty: markDirty}
}

// RaiseHand handles POST /classrooms/{code}/hand
// Raises or lowers the caller's hand. An unknown client_id is upserted as
// a fresh student record, so the operation doubles as a join.
func (h *HandsHandler) RaiseHand(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	var req models.RaiseHandRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ClientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")
		return
	}

	if err := h.reg.RaiseHand(code, req.ClientID, req.UserName, req.Raised); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Classroom not found")
		return
	}
	h.markDirty()

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// ClearHands handles POST /classrooms/{code}/hands/clear
// Admin-only: lowers every student's hand.
func (h *HandsHandler) ClearHands(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	var req models.ClearHandsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ClientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")
		return
	}

	if err := h.reg.ClearHands(code, req.ClientID); err != nil {
		writeRegistryError(w, err)
		return
	}
	h.markDirty()

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
