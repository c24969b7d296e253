// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the season in SQLite or PostgreSQL.

# Connecting

	conn, err := db.Open("sqlite", "formula-zero.db")
	if err != nil {
		log.Fatal(err)
	}
	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

SQLite connections are limited to one open connection, which also keeps
":memory:" databases alive for tests.

# Tables

  - season_info: single row with title and next race
  - driver: name, colour, team, kart, seq (configured order)
  - race: name and round_no (chronological order)
  - race_result: points per driver per race

# Relationships

	race 1──* race_result *──1 driver

Result rows are deleted explicitly before their race or driver, so the
store does not depend on SQLite foreign key enforcement.

# Season Store

	season, err := db.LoadSeason(ctx, conn)
	created, err := db.SaveRace(ctx, conn, models.RaceResult{...})
	err = db.DeleteDriver(ctx, conn, "Dan")

Every mutation runs in one transaction. SaveRace validates the results
against the stored drivers before writing. Deleting a missing race or
driver returns ErrNotFound.
*/
package db
