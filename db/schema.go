// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/formula-zero/models"
)

// Open connects to the configured database and verifies the connection.
// dbType is "sqlite" or "postgres".
func Open(dbType, url string) (*sql.DB, error) {
	var driverName string
	switch dbType {
	case models.DatabaseSQLite:
		driverName = "sqlite"
	case models.DatabasePostgres:
		driverName = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driverName, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer, and an in-memory database lives
	// only as long as its one connection
	if dbType == models.DatabaseSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable between PostgreSQL and SQLite
const schema = `
-- Season header
CREATE TABLE IF NOT EXISTS season_info (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    title TEXT NOT NULL,
    next_race TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Drivers, seq is the configured order
CREATE TABLE IF NOT EXISTS driver (
    name TEXT PRIMARY KEY,
    seq INTEGER NOT NULL,
    color TEXT NOT NULL,
    team TEXT NOT NULL,
    kart TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_driver_team ON driver(team);

-- Races, round_no is the chronological order
CREATE TABLE IF NOT EXISTS race (
    name TEXT PRIMARY KEY,
    round_no INTEGER NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Points per driver per race
CREATE TABLE IF NOT EXISTS race_result (
    race_name TEXT NOT NULL REFERENCES race(name) ON DELETE CASCADE,
    driver_name TEXT NOT NULL REFERENCES driver(name) ON DELETE CASCADE,
    points INTEGER NOT NULL CHECK (points >= 0),
    PRIMARY KEY (race_name, driver_name)
);

CREATE INDEX IF NOT EXISTS idx_race_result_driver ON race_result(driver_name);
`
