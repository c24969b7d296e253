// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Database type constants
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Domain types

// Driver is a configured championship driver. Name is the unique key.
type Driver struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
	Team  string `json:"team" yaml:"team"`
	Kart  string `json:"kart" yaml:"kart"`
}

// RaceResult holds the points every driver scored in one race.
// driver name -> points
type RaceResult struct {
	Race    string         `json:"race" yaml:"race"`
	Results map[string]int `json:"results" yaml:"results"`
}

// Season is a complete snapshot of the championship.
// Drivers are in configuration order, Races in chronological order.
type Season struct {
	Title    string       `json:"title" yaml:"title"`
	NextRace string       `json:"next_race,omitempty" yaml:"next_race"`
	Drivers  []Driver     `json:"drivers" yaml:"drivers"`
	Races    []RaceResult `json:"races" yaml:"races"`
}

// Standings types

type DriverStanding struct {
	Position int    `json:"position"`
	Driver   string `json:"driver"`
	Team     string `json:"team"`
	Color    string `json:"color"`
	Points   int    `json:"points"`
	Gap      int    `json:"gap"`
}

type TeamStanding struct {
	Position int      `json:"position"`
	Team     string   `json:"team"`
	Drivers  []string `json:"drivers"`
	Points   int      `json:"points"`
	Gap      int      `json:"gap"`
}

// RacePosition is a driver's placing within a single race
type RacePosition struct {
	Race     string `json:"race"`
	Position int    `json:"position"`
	Points   int    `json:"points"`
}

// TeamRacePosition is a team's placing within a single race
type TeamRacePosition struct {
	Race     string `json:"race"`
	Position int    `json:"position"`
	Points   int    `json:"points"`
}

type DriverRacePoints struct {
	Position int    `json:"position"`
	Driver   string `json:"driver"`
	Team     string `json:"team"`
	Color    string `json:"color"`
	Points   int    `json:"points"`
}

type TeamRacePoints struct {
	Position int    `json:"position"`
	Team     string `json:"team"`
	Points   int    `json:"points"`
}

type RaceDetail struct {
	Race         string             `json:"race"`
	Drivers      []DriverRacePoints `json:"drivers"`
	Teams        []TeamRacePoints   `json:"teams"`
	WinnerDriver string             `json:"winner_driver"`
	WinnerTeam   string             `json:"winner_team"`
}

// ProgressPoint is the cumulative total of every driver after Race
type ProgressPoint struct {
	Race           string         `json:"race"`
	PointsByDriver map[string]int `json:"points_by_driver"`
}

type DriverProfile struct {
	Driver        Driver         `json:"driver"`
	Rank          int            `json:"rank"`
	TotalPoints   int            `json:"total_points"`
	BestResult    int            `json:"best_result"`
	BestRace      string         `json:"best_race"`
	AveragePoints float64        `json:"average_points"`
	BestPosition  int            `json:"best_position"`
	Positions     []RacePosition `json:"positions"`
}

type TeamProfile struct {
	Team          string             `json:"team"`
	Drivers       []string           `json:"drivers"`
	Rank          int                `json:"rank"`
	TotalPoints   int                `json:"total_points"`
	BestRace      string             `json:"best_race"`
	BestRacePts   int                `json:"best_race_points"`
	AveragePoints float64            `json:"average_points"`
	BestPosition  int                `json:"best_position"`
	Positions     []TeamRacePosition `json:"positions"`
}

// Dashboard bundles everything the main view renders
type Dashboard struct {
	Title        string           `json:"title"`
	NextRace     string           `json:"next_race,omitempty"`
	Drivers      []DriverStanding `json:"drivers"`
	Constructors []TeamStanding   `json:"constructors"`
	Progress     []ProgressPoint  `json:"progress"`
	ChartMax     int              `json:"chart_max"`
}

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

type SaveRaceRequest struct {
	Results map[string]int `json:"results"`
}

type SaveDriverRequest struct {
	Color string `json:"color"`
	Team  string `json:"team"`
	Kart  string `json:"kart"`
}

type UpdateSeasonRequest struct {
	Title    string `json:"title"`
	NextRace string `json:"next_race"`
}

// Response types

type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ProgressResponse struct {
	Races    []string        `json:"races"`
	Progress []ProgressPoint `json:"progress"`
	ChartMax int             `json:"chart_max"`
}

type MutationResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
