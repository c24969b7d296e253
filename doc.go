// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Formula Zero API server.

Formula Zero is a go-kart championship tracker. It stores per-race points
for each driver and serves driver and constructor standings, race results,
profiles and a cumulative points chart, with a password-protected editor
for entering results.

# Starting the Server

With no configuration the server uses a local SQLite file and seeds it
with the built-in season:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is read before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string or SQLite file (default: formula-zero.db)
  - SEASON_FILE (--season): YAML season used to seed an empty database
  - ADMIN_PASSWORD (--admin-password): Editor password (default: admin123)
  - ADMIN_PASSWORD_HASH (--admin-hash): bcrypt hash, takes precedence over the password
  - JWT_SECRET (--jwt-secret): Token signing secret (random per start when unset)
  - TOKEN_TTL (--token-ttl): Admin token lifetime (default: 12h)
  - --debug: Debug logging

Logs are text on a terminal and JSON otherwise.

# Architecture

  - standings: Pure championship computations
  - season: YAML season loading and the built-in season
  - handlers: HTTP request handlers (standings, auth, admin, live)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, bearer auth, JSON helpers
  - live: Websocket fan-out of dashboard updates
  - render: Text tables and the SVG progress chart
  - models: Domain and request/response types
  - auth: Password checks and admin tokens
  - db: Schema and season storage
  - cliparse: Configuration parsing

The f0 command in cmd/f0 prints the same tables from a season file
without a server.
*/
package main
