// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/chalkboard/middleware"
	"github.com/danielhkuo/chalkboard/models"
	"github.com/danielhkuo/chalkboard/registry"
)

type StatsHandler struct {
	reg *registry.Registry
}

func NewStatsHandler(reg *registry.Registry) *StatsHandler {
	return &StatsHandler{reg: reg}
}

// GetStats handles GET /stats
// Read-only aggregate over the whole registry.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.reg.ComputeStats()

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		TotalClassrooms:  stats.TotalClassrooms,
		ActiveClassrooms: stats.ActiveClassrooms,
		TotalStudents:    stats.TotalStudents,
		UptimeSeconds:    int64(stats.Uptime.Seconds()),
		Uptime:           stats.Uptime.Round(time.Second).String(),
	})
}
