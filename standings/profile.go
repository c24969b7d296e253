// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package standings

import "github.com/danielhkuo/formula-zero/models"

// AveragePoints returns total/raceCount rounded to one decimal place,
// halves away from zero. It works on exact integers so the result is
// never derived from an already rounded value.
func AveragePoints(total, raceCount int) (float64, error) {
	if raceCount <= 0 {
		return 0, &Error{Op: "average points", Err: ErrEmptyRaceHistory}
	}

	num := total * 10
	neg := num < 0
	if neg {
		num = -num
	}
	tenths := (2*num + raceCount) / (2 * raceCount)
	if neg {
		tenths = -tenths
	}
	return float64(tenths) / 10, nil
}

// DriverProfile collects the drill-down statistics for one driver
func DriverProfile(drivers []models.Driver, races []models.RaceResult, name string) (models.DriverProfile, error) {
	if err := Validate(drivers, races); err != nil {
		return models.DriverProfile{}, err
	}
	driver, err := FindDriver(drivers, name)
	if err != nil {
		return models.DriverProfile{}, err
	}
	if len(races) == 0 {
		return models.DriverProfile{}, &Error{Op: "driver profile", Driver: name, Err: ErrEmptyRaceHistory}
	}

	total, err := TotalPoints(races, name)
	if err != nil {
		return models.DriverProfile{}, err
	}

	// First race wins ties for best result
	bestResult, bestRace := -1, ""
	for _, race := range races {
		if pts := race.Results[name]; pts > bestResult {
			bestResult, bestRace = pts, race.Race
		}
	}

	average, err := AveragePoints(total, len(races))
	if err != nil {
		return models.DriverProfile{}, err
	}

	positions, err := PositionsForDriver(drivers, races, name)
	if err != nil {
		return models.DriverProfile{}, err
	}
	bestPosition := positions[0].Position
	for _, p := range positions[1:] {
		if p.Position < bestPosition {
			bestPosition = p.Position
		}
	}

	table, err := DriverStandings(drivers, races)
	if err != nil {
		return models.DriverProfile{}, err
	}
	rank := 0
	for _, s := range table {
		if s.Driver == name {
			rank = s.Position
			break
		}
	}

	return models.DriverProfile{
		Driver:        driver,
		Rank:          rank,
		TotalPoints:   total,
		BestResult:    bestResult,
		BestRace:      bestRace,
		AveragePoints: average,
		BestPosition:  bestPosition,
		Positions:     positions,
	}, nil
}

// TeamProfile collects the drill-down statistics for one team
func TeamProfile(drivers []models.Driver, races []models.RaceResult, team string) (models.TeamProfile, error) {
	if err := Validate(drivers, races); err != nil {
		return models.TeamProfile{}, err
	}
	members, err := TeamDrivers(drivers, team)
	if err != nil {
		return models.TeamProfile{}, err
	}
	if len(races) == 0 {
		return models.TeamProfile{}, &Error{Op: "team profile", Team: team, Err: ErrEmptyRaceHistory}
	}

	positions, err := PositionsForTeam(drivers, races, team)
	if err != nil {
		return models.TeamProfile{}, err
	}

	total := 0
	bestRace, bestPts := "", -1
	bestPosition := positions[0].Position
	for _, p := range positions {
		total += p.Points
		if p.Points > bestPts {
			bestRace, bestPts = p.Race, p.Points
		}
		if p.Position < bestPosition {
			bestPosition = p.Position
		}
	}

	average, err := AveragePoints(total, len(races))
	if err != nil {
		return models.TeamProfile{}, err
	}

	table, err := ConstructorStandings(drivers, races)
	if err != nil {
		return models.TeamProfile{}, err
	}
	rank := 0
	for _, s := range table {
		if s.Team == team {
			rank = s.Position
			break
		}
	}

	return models.TeamProfile{
		Team:          team,
		Drivers:       members,
		Rank:          rank,
		TotalPoints:   total,
		BestRace:      bestRace,
		BestRacePts:   bestPts,
		AveragePoints: average,
		BestPosition:  bestPosition,
		Positions:     positions,
	}, nil
}
