// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/formula-zero/models"
	"github.com/danielhkuo/formula-zero/standings"
)

var ErrNotFound = errors.New("not found")

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// IsEmpty reports whether no season data has been stored yet
func IsEmpty(ctx context.Context, db *sql.DB) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM driver) + (SELECT COUNT(*) FROM race) + (SELECT COUNT(*) FROM season_info)
	`).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count season rows: %w", err)
	}
	return count == 0, nil
}

// SeedSeason stores a complete season snapshot.
// Intended for an empty database; existing rows with the same names conflict.
func SeedSeason(ctx context.Context, db *sql.DB, s models.Season) error {
	if err := standings.Validate(s.Drivers, s.Races); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsertSeasonInfo(ctx, tx, s.Title, s.NextRace); err != nil {
		return err
	}

	for i, d := range s.Drivers {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO driver (name, seq, color, team, kart)
			VALUES ($1, $2, $3, $4, $5)
		`, d.Name, i+1, d.Color, d.Team, d.Kart)
		if err != nil {
			return fmt.Errorf("failed to insert driver %s: %w", d.Name, err)
		}
	}

	for i, race := range s.Races {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO race (name, round_no) VALUES ($1, $2)
		`, race.Race, i+1)
		if err != nil {
			return fmt.Errorf("failed to insert race %s: %w", race.Race, err)
		}
		if err := insertResults(ctx, tx, s.Drivers, race); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit season: %w", err)
	}
	return nil
}

// LoadSeason reads the stored season with drivers in configured order
// and races in chronological order
func LoadSeason(ctx context.Context, db *sql.DB) (models.Season, error) {
	var s models.Season
	err := db.QueryRowContext(ctx, `
		SELECT title, next_race FROM season_info WHERE id = 1
	`).Scan(&s.Title, &s.NextRace)
	if err != nil && err != sql.ErrNoRows {
		return models.Season{}, fmt.Errorf("failed to query season info: %w", err)
	}

	s.Drivers, err = loadDrivers(ctx, db)
	if err != nil {
		return models.Season{}, err
	}

	rows, err := db.QueryContext(ctx, `SELECT name FROM race ORDER BY round_no`)
	if err != nil {
		return models.Season{}, fmt.Errorf("failed to query races: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	s.Races = []models.RaceResult{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return models.Season{}, fmt.Errorf("failed to scan race: %w", err)
		}
		index[name] = len(s.Races)
		s.Races = append(s.Races, models.RaceResult{Race: name, Results: map[string]int{}})
	}
	if err := rows.Err(); err != nil {
		return models.Season{}, err
	}

	results, err := db.QueryContext(ctx, `SELECT race_name, driver_name, points FROM race_result`)
	if err != nil {
		return models.Season{}, fmt.Errorf("failed to query results: %w", err)
	}
	defer results.Close()

	for results.Next() {
		var raceName, driverName string
		var points int
		if err := results.Scan(&raceName, &driverName, &points); err != nil {
			return models.Season{}, fmt.Errorf("failed to scan result: %w", err)
		}
		if i, ok := index[raceName]; ok {
			s.Races[i].Results[driverName] = points
		}
	}

	return s, results.Err()
}

// SaveSeasonInfo updates the season title and the announced next race
func SaveSeasonInfo(ctx context.Context, db *sql.DB, title, nextRace string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsertSeasonInfo(ctx, tx, title, nextRace); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveRace creates a race as the newest round, or replaces the results of an
// existing race in place. The results must cover exactly the stored drivers.
func SaveRace(ctx context.Context, db *sql.DB, race models.RaceResult) (created bool, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	drivers, err := loadDrivers(ctx, tx)
	if err != nil {
		return false, err
	}
	if err := standings.ValidateRace(drivers, race); err != nil {
		return false, err
	}

	var round int
	err = tx.QueryRowContext(ctx, `SELECT round_no FROM race WHERE name = $1`, race.Race).Scan(&round)
	switch {
	case err == sql.ErrNoRows:
		created = true
		_, err = tx.ExecContext(ctx, `
			INSERT INTO race (name, round_no)
			SELECT $1, COALESCE(MAX(round_no), 0) + 1 FROM race
		`, race.Race)
		if err != nil {
			return false, fmt.Errorf("failed to insert race: %w", err)
		}
	case err != nil:
		return false, fmt.Errorf("failed to query race: %w", err)
	default:
		if _, err := tx.ExecContext(ctx, `DELETE FROM race_result WHERE race_name = $1`, race.Race); err != nil {
			return false, fmt.Errorf("failed to clear race results: %w", err)
		}
	}

	if err := insertResults(ctx, tx, drivers, race); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit race: %w", err)
	}
	return created, nil
}

// DeleteRace removes a race and its results
func DeleteRace(ctx context.Context, db *sql.DB, name string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM race_result WHERE race_name = $1`, name); err != nil {
		return fmt.Errorf("failed to delete race results: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM race WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete race: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("race %s: %w", name, ErrNotFound)
	}

	return tx.Commit()
}

// SaveDriver creates or updates a driver. A new driver is appended to the
// configured order and scores 0 in every race already stored.
func SaveDriver(ctx context.Context, db *sql.DB, d models.Driver) (created bool, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int
	err = tx.QueryRowContext(ctx, `SELECT seq FROM driver WHERE name = $1`, d.Name).Scan(&seq)
	switch {
	case err == sql.ErrNoRows:
		created = true
		_, err = tx.ExecContext(ctx, `
			INSERT INTO driver (name, seq, color, team, kart)
			SELECT $1, COALESCE(MAX(seq), 0) + 1, $2, $3, $4 FROM driver
		`, d.Name, d.Color, d.Team, d.Kart)
		if err != nil {
			return false, fmt.Errorf("failed to insert driver: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO race_result (race_name, driver_name, points)
			SELECT name, $1, 0 FROM race
		`, d.Name)
		if err != nil {
			return false, fmt.Errorf("failed to backfill driver results: %w", err)
		}
	case err != nil:
		return false, fmt.Errorf("failed to query driver: %w", err)
	default:
		_, err = tx.ExecContext(ctx, `
			UPDATE driver SET color = $1, team = $2, kart = $3 WHERE name = $4
		`, d.Color, d.Team, d.Kart, d.Name)
		if err != nil {
			return false, fmt.Errorf("failed to update driver: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit driver: %w", err)
	}
	return created, nil
}

// DeleteDriver removes a driver and every result they scored
func DeleteDriver(ctx context.Context, db *sql.DB, name string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM race_result WHERE driver_name = $1`, name); err != nil {
		return fmt.Errorf("failed to delete driver results: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM driver WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("driver %s: %w", name, ErrNotFound)
	}

	return tx.Commit()
}

func loadDrivers(ctx context.Context, q queryer) ([]models.Driver, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT name, color, team, kart FROM driver ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query drivers: %w", err)
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.Name, &d.Color, &d.Team, &d.Kart); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func upsertSeasonInfo(ctx context.Context, tx *sql.Tx, title, nextRace string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO season_info (id, title, next_race, updated_at)
		VALUES (1, $1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			next_race = excluded.next_race,
			updated_at = excluded.updated_at
	`, title, nextRace)
	if err != nil {
		return fmt.Errorf("failed to save season info: %w", err)
	}
	return nil
}

// insertResults writes one row per configured driver, in configured order
func insertResults(ctx context.Context, tx *sql.Tx, drivers []models.Driver, race models.RaceResult) error {
	for _, d := range drivers {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO race_result (race_name, driver_name, points)
			VALUES ($1, $2, $3)
		`, race.Race, d.Name, race.Results[d.Name])
		if err != nil {
			return fmt.Errorf("failed to insert result for %s in %s: %w", d.Name, race.Race, err)
		}
	}
	return nil
}
