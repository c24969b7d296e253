// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Formula Zero API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Dashboard (public):

	GET /api/season                  - Season snapshot
	GET /api/dashboard               - Both tables plus progress
	GET /api/standings/drivers       - Driver championship
	GET /api/standings/constructors  - Constructor championship
	GET /api/progress                - Cumulative points per race
	GET /api/races/{race}            - Single race result
	GET /api/drivers/{driver}        - Driver profile
	GET /api/teams/{team}            - Team profile
	GET /standings.txt               - Plain text tables
	GET /progress.svg                - Progress chart
	GET /api/live                    - Websocket dashboard feed

Login:

	POST /api/auth - Exchange the admin password for a bearer token

Season editor (admin, requires Authorization: Bearer <token>):

	GET    /api/admin/season
	PUT    /api/admin/season
	PUT    /api/admin/races/{race}
	DELETE /api/admin/races/{race}
	PUT    /api/admin/drivers/{driver}
	DELETE /api/admin/drivers/{driver}

# Handler Initialization

The router owns the live hub and the token issuer, and shares them
between the handlers that need them:

	hub := live.NewHub[models.Dashboard]()
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	adminHandler := handlers.NewAdminHandler(db, cfg, hub)
	liveHandler := handlers.NewLiveHandler(db, hub)
*/
package router
