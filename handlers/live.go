// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/formula-zero/live"
	"github.com/danielhkuo/formula-zero/middleware"
	"github.com/danielhkuo/formula-zero/models"
)

type LiveHandler struct {
	db  *sql.DB
	hub *live.Hub[models.Dashboard]
}

func NewLiveHandler(db *sql.DB, hub *live.Hub[models.Dashboard]) *LiveHandler {
	return &LiveHandler{db: db, hub: hub}
}

// Stream handles GET /api/live
// Upgrades to a websocket that receives the dashboard on connect and
// after every admin change
func (h *LiveHandler) Stream(w http.ResponseWriter, r *http.Request) {
	err := live.Serve(w, r, h.hub, live.TopicDashboard, func(ctx context.Context) (models.Dashboard, error) {
		return currentDashboard(ctx, h.db)
	})
	if err != nil {
		slog.Warn("live stream ended",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
	}
}
