// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Season data as configured or stored:

  - Driver: name, color, team, kart glyph
  - RaceResult: race name and points per driver
  - Season: title, next race, ordered drivers, chronological races

# Derived Types

Computed by the standings package on every request:

  - DriverStanding, TeamStanding: championship tables with gap to leader
  - RacePosition, TeamRacePosition: placing within a single race
  - RaceDetail: per-race driver and team ranking with winners
  - ProgressPoint: cumulative totals after each race
  - DriverProfile, TeamProfile: drill-down statistics
  - Dashboard: standings plus progress series

# Request Types

  - LoginRequest: password
  - SaveRaceRequest: results (map[string]int)
  - SaveDriverRequest: color, team, kart
  - UpdateSeasonRequest: title, next_race

# Response Types

  - LoginResponse: success, token, expires_at
  - ProgressResponse: races, progress, chart_max
  - MutationResponse: message
  - ErrorResponse: error, message
*/
package models
