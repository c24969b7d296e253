// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/formula-zero/auth"
	"github.com/danielhkuo/formula-zero/cliparse"
	"github.com/danielhkuo/formula-zero/handlers"
	"github.com/danielhkuo/formula-zero/live"
	"github.com/danielhkuo/formula-zero/middleware"
	"github.com/danielhkuo/formula-zero/models"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	hub := live.NewHub[models.Dashboard]()
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize handlers
	standingsHandler := handlers.NewStandingsHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(cfg, tokens)
	adminHandler := handlers.NewAdminHandler(db, cfg, hub)
	liveHandler := handlers.NewLiveHandler(db, hub)

	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(tokens, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Dashboard (public)
	mux.HandleFunc("GET /api/season", middleware.WithLogging(standingsHandler.GetSeason))
	mux.HandleFunc("GET /api/dashboard", middleware.WithLogging(standingsHandler.GetDashboard))
	mux.HandleFunc("GET /api/standings/drivers", middleware.WithLogging(standingsHandler.GetDriverStandings))
	mux.HandleFunc("GET /api/standings/constructors", middleware.WithLogging(standingsHandler.GetConstructorStandings))
	mux.HandleFunc("GET /api/progress", middleware.WithLogging(standingsHandler.GetProgress))
	mux.HandleFunc("GET /api/races/{race}", middleware.WithLogging(standingsHandler.GetRace))
	mux.HandleFunc("GET /api/drivers/{driver}", middleware.WithLogging(standingsHandler.GetDriver))
	mux.HandleFunc("GET /api/teams/{team}", middleware.WithLogging(standingsHandler.GetTeam))
	mux.HandleFunc("GET /standings.txt", middleware.WithLogging(standingsHandler.GetStandingsText))
	mux.HandleFunc("GET /progress.svg", middleware.WithLogging(standingsHandler.GetProgressChart))
	mux.HandleFunc("GET /api/live", middleware.WithLogging(liveHandler.Stream))

	// Login
	mux.HandleFunc("POST /api/auth", middleware.WithLogging(authHandler.Login))

	// Season editor (admin, requires bearer token)
	mux.HandleFunc("GET /api/admin/season", admin(adminHandler.GetSeason))
	mux.HandleFunc("PUT /api/admin/season", admin(adminHandler.UpdateSeason))
	mux.HandleFunc("PUT /api/admin/races/{race}", admin(adminHandler.SaveRace))
	mux.HandleFunc("DELETE /api/admin/races/{race}", admin(adminHandler.DeleteRace))
	mux.HandleFunc("PUT /api/admin/drivers/{driver}", admin(adminHandler.SaveDriver))
	mux.HandleFunc("DELETE /api/admin/drivers/{driver}", admin(adminHandler.DeleteDriver))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("formula-zero API v1"))
	})

	return mux
}
