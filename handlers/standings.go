// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/formula-zero/cliparse"
	"github.com/danielhkuo/formula-zero/db"
	"github.com/danielhkuo/formula-zero/middleware"
	"github.com/danielhkuo/formula-zero/models"
	"github.com/danielhkuo/formula-zero/render"
	"github.com/danielhkuo/formula-zero/standings"
)

type StandingsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewStandingsHandler(db *sql.DB, cfg cliparse.Config) *StandingsHandler {
	return &StandingsHandler{db: db, cfg: cfg}
}

// loadSeason reads the stored season or writes a 500 and returns false
func (h *StandingsHandler) loadSeason(w http.ResponseWriter, r *http.Request) (models.Season, bool) {
	s, err := db.LoadSeason(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load season",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Season{}, false
	}
	return s, true
}

// GetSeason handles GET /api/season
func (h *StandingsHandler) GetSeason(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSeason(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s)
}

// GetDashboard handles GET /api/dashboard
func (h *StandingsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSeason(w, r)
	if !ok {
		return
	}

	dash, err := standings.Dashboard(s)
	if err != nil {
		writeError(w, r, "failed to compute dashboard", err, false)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, dash)
}

// GetDriverStandings handles GET /api/standings/drivers
func (h *StandingsHandler) GetDriverStandings(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSeason(w, r)
	if !ok {
		return
	}

	rows, err := standings.DriverStandings(s.Drivers, s.Races)
	if err != nil {
		writeError(w, r, "failed to compute driver standings", err, false)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, rows)
}

// GetConstructorStandings handles GET /api/standings/constructors
func (h *StandingsHandler) GetConstructorStandings(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSeason(w, r)
	if !ok {
		return
	}

	rows, err := standings.ConstructorStandings(s.Drivers, s.Races)
	if err != nil {
		writeError(w, r, "failed to compute constructor standings", err, false)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, rows)
}

// GetProgress handles GET /api/progress
func (h *StandingsHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSeason(w, r)
	if !ok {
		return
	}

	series, err := standings.CumulativePointsSeries(s.Drivers, s.Races)
	if err != nil {
		writeError(w, r, "failed to compute progress", err, false)
		return
	}

	races := make([]string, len(s.Races))
	for i, race := range s.Races {
		races[i] = race.Race
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProgressResponse{
		Races:    races,
		Progress: series,
		ChartMax: standings.ChartScale(series),
	})
}

// GetRace handles GET /api/races/{race}
func (h *StandingsHandler) GetRace(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("race")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "race is required")
		return
	}

	s, ok := h.loadSeason(w, r)
	if !ok {
		return
	}

	race, err := standings.FindRace(s.Races, name)
	if err != nil {
		writeError(w, r, "failed to find race", err, false)
		return
	}

	detail, err := standings.RaceDetail(s.Drivers, race)
	if err != nil {
		writeError(w, r, "failed to compute race detail", err, false)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, detail)
}

// GetDriver handles GET /api/drivers/{driver}
// Returns 409 until at least one race has been run
func (h *StandingsHandler) GetDriver(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("driver")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "driver is required")
		return
	}

	s, ok := h.loadSeason(w, r)
	if !ok {
		return
	}

	profile, err := standings.DriverProfile(s.Drivers, s.Races, name)
	if err != nil {
		writeError(w, r, "failed to compute driver profile", err, false)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, profile)
}

// GetTeam handles GET /api/teams/{team}
// Returns 409 until at least one race has been run
func (h *StandingsHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("team")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "team is required")
		return
	}

	s, ok := h.loadSeason(w, r)
	if !ok {
		return
	}

	profile, err := standings.TeamProfile(s.Drivers, s.Races, name)
	if err != nil {
		writeError(w, r, "failed to compute team profile", err, false)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, profile)
}

// GetStandingsText handles GET /standings.txt
func (h *StandingsHandler) GetStandingsText(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSeason(w, r)
	if !ok {
		return
	}

	dash, err := standings.Dashboard(s)
	if err != nil {
		writeError(w, r, "failed to compute dashboard", err, false)
		return
	}

	var b bytes.Buffer
	render.Standings(&b, dash)
	if len(dash.Progress) > 0 {
		b.WriteString("\n")
		render.ProgressTable(&b, s.Drivers, dash.Progress)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(b.Bytes())
}

// GetProgressChart handles GET /progress.svg
func (h *StandingsHandler) GetProgressChart(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSeason(w, r)
	if !ok {
		return
	}

	series, err := standings.CumulativePointsSeries(s.Drivers, s.Races)
	if err != nil {
		writeError(w, r, "failed to compute progress", err, false)
		return
	}

	var b bytes.Buffer
	if err := render.ProgressChart(&b, s.Drivers, series, standings.ChartScale(series)); err != nil {
		writeError(w, r, "failed to render chart", err, false)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(b.Bytes())
}
