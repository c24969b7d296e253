// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/danielhkuo/formula-zero/cliparse"
	"github.com/danielhkuo/formula-zero/db"
	"github.com/danielhkuo/formula-zero/live"
	"github.com/danielhkuo/formula-zero/middleware"
	"github.com/danielhkuo/formula-zero/models"
	"github.com/danielhkuo/formula-zero/standings"
)

// DefaultDriverColor is used when a new driver is saved without a colour
const DefaultDriverColor = "#808080"

// AdminHandler serves the season editor. Every route sits behind
// middleware.RequireAdmin; successful mutations push a fresh dashboard
// to live subscribers.
type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	hub *live.Hub[models.Dashboard]

	// Serializes load+publish so the last snapshot sent is the newest
	publishMu sync.Mutex
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config, hub *live.Hub[models.Dashboard]) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg, hub: hub}
}

// GetSeason handles GET /api/admin/season
func (h *AdminHandler) GetSeason(w http.ResponseWriter, r *http.Request) {
	s, err := db.LoadSeason(r.Context(), h.db)
	if err != nil {
		writeError(w, r, "failed to load season", err, false)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s)
}

// UpdateSeason handles PUT /api/admin/season
func (h *AdminHandler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSeasonRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	if err := db.SaveSeasonInfo(r.Context(), h.db, req.Title, strings.TrimSpace(req.NextRace)); err != nil {
		writeError(w, r, "failed to save season info", err, true)
		return
	}

	h.publish(r.Context())
	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{Message: "season updated"})
}

// SaveRace handles PUT /api/admin/races/{race}
// Creates the race as the newest round (201) or replaces its results (200)
func (h *AdminHandler) SaveRace(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("race"))
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "race is required")
		return
	}

	var req models.SaveRaceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Results == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "results are required")
		return
	}

	created, err := db.SaveRace(r.Context(), h.db, models.RaceResult{Race: name, Results: req.Results})
	if err != nil {
		writeError(w, r, "failed to save race", err, true)
		return
	}

	slog.Info("race saved", "race", name, "created", created)
	h.publish(r.Context())

	if created {
		middleware.JSONResponse(w, http.StatusCreated, models.MutationResponse{Message: "race created"})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{Message: "race updated"})
}

// DeleteRace handles DELETE /api/admin/races/{race}
func (h *AdminHandler) DeleteRace(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("race"))
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "race is required")
		return
	}

	if err := db.DeleteRace(r.Context(), h.db, name); err != nil {
		writeError(w, r, "failed to delete race", err, true)
		return
	}

	slog.Info("race deleted", "race", name)
	h.publish(r.Context())
	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{Message: "race deleted"})
}

// SaveDriver handles PUT /api/admin/drivers/{driver}
// A new driver (201) scores 0 in every race already run
func (h *AdminHandler) SaveDriver(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("driver"))
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "driver is required")
		return
	}

	var req models.SaveDriverRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	d := models.Driver{
		Name:  name,
		Color: strings.TrimSpace(req.Color),
		Team:  strings.TrimSpace(req.Team),
		Kart:  req.Kart,
	}
	if d.Team == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "team is required")
		return
	}
	if d.Color == "" {
		d.Color = DefaultDriverColor
	}

	created, err := db.SaveDriver(r.Context(), h.db, d)
	if err != nil {
		writeError(w, r, "failed to save driver", err, true)
		return
	}

	slog.Info("driver saved", "driver", name, "team", d.Team, "created", created)
	h.publish(r.Context())

	if created {
		middleware.JSONResponse(w, http.StatusCreated, models.MutationResponse{Message: "driver created"})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{Message: "driver updated"})
}

// DeleteDriver handles DELETE /api/admin/drivers/{driver}
// Removes the driver together with every result they scored
func (h *AdminHandler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("driver"))
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "driver is required")
		return
	}

	if err := db.DeleteDriver(r.Context(), h.db, name); err != nil {
		writeError(w, r, "failed to delete driver", err, true)
		return
	}

	slog.Info("driver deleted", "driver", name)
	h.publish(r.Context())
	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{Message: "driver deleted"})
}

// publish recomputes the dashboard and pushes it to live clients.
// A failure here does not undo the mutation.
func (h *AdminHandler) publish(ctx context.Context) {
	h.publishMu.Lock()
	defer h.publishMu.Unlock()

	dash, err := currentDashboard(ctx, h.db)
	if err != nil {
		slog.Error("failed to publish dashboard", "error", err)
		return
	}
	h.hub.Publish(live.TopicDashboard, dash)
}

func currentDashboard(ctx context.Context, conn *sql.DB) (models.Dashboard, error) {
	s, err := db.LoadSeason(ctx, conn)
	if err != nil {
		return models.Dashboard{}, err
	}
	return standings.Dashboard(s)
}
