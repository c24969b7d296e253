// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Formula Zero API.

# Handler Types

Each handler is a struct with its dependencies:

  - StandingsHandler: public dashboard, standings, race/driver/team views,
    text tables and the SVG chart
  - AuthHandler: admin login
  - AdminHandler: season editor (season info, races, drivers)
  - LiveHandler: websocket feed of dashboard snapshots

	standingsHandler := handlers.NewStandingsHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg, hub)

# Computation

Every request loads the whole season from the database and recomputes
from scratch with package standings. Nothing is cached.

# Admin Flow

	POST /api/auth {"password": "..."}  → token
	PUT  /api/admin/races/{race}        Authorization: Bearer <token>

Race results must name every configured driver exactly once. A new race
becomes the newest round; saving an existing race replaces its results in
place. A new driver scores 0 in races already run. Each successful change
publishes a fresh dashboard to live clients.

# Error Responses

All errors return JSON with error and message fields:

	{"error": "Not Found", "message": "find race: unknown race (race=Monza)"}

Status codes:

  - 400: malformed JSON or results that do not match the drivers
  - 401: wrong password, missing or invalid token
  - 404: unknown race, driver or team
  - 409: profile requested before any race was run
  - 500: database or rendering failure
*/
package handlers
