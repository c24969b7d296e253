// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package standings computes championship tables from race results.

Every function is a pure transform over the configured drivers (in
configuration order) and the races (in chronological order). Nothing is
cached; callers pass the full season each time.

# Championship Tables

	drivers, err := standings.DriverStandings(season.Drivers, season.Races)
	teams, err := standings.ConstructorStandings(season.Drivers, season.Races)

Both sort by points, descending. Ties keep the configured order: driver
order for drivers, first appearance of the team for constructors. Gap is
the leader's total minus the entry's total.

# Per-Race Views

	positions, err := standings.PositionsForDriver(drivers, races, "Kuba")
	detail, err := standings.RaceDetail(drivers, race)

A per-race position ranks drivers by that race's points alone. It is not
the championship position.

# Progress

	series, err := standings.CumulativePointsSeries(drivers, races)

Running totals after each race, non-decreasing per driver.

# Errors

Failures are *standings.Error values wrapping one of the sentinels:

	ErrMissingDriverResult - a race lacks a configured driver
	ErrUnknownDriver       - a name that is not configured
	ErrUnknownTeam         - a team no driver belongs to
	ErrUnknownRace         - a race that does not exist
	ErrEmptyRaceHistory    - averages and best-race lookups need a race
	ErrNegativePoints      - points below zero
	ErrDuplicateDriver     - a driver configured twice
	ErrDuplicateRace       - a race name used twice

Use errors.Is to classify them.
*/
package standings
