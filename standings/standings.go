// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package standings

import (
	"sort"

	"github.com/danielhkuo/formula-zero/models"
)

// Validate checks a season snapshot before anything is computed from it.
// Driver and race names must be unique, every race must score every
// configured driver with non-negative points, and no race may score a
// driver that is not configured.
func Validate(drivers []models.Driver, races []models.RaceResult) error {
	if _, err := driverIndex(drivers); err != nil {
		return err
	}

	seen := make(map[string]bool, len(races))
	for _, race := range races {
		if seen[race.Race] {
			return &Error{Op: "validate", Race: race.Race, Err: ErrDuplicateRace}
		}
		seen[race.Race] = true

		if err := ValidateRace(drivers, race); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRace checks a single race against the configured drivers
func ValidateRace(drivers []models.Driver, race models.RaceResult) error {
	known, err := driverIndex(drivers)
	if err != nil {
		return err
	}

	for _, d := range drivers {
		pts, ok := race.Results[d.Name]
		if !ok {
			return &Error{Op: "validate", Race: race.Race, Driver: d.Name, Err: ErrMissingDriverResult}
		}
		if pts < 0 {
			return &Error{Op: "validate", Race: race.Race, Driver: d.Name, Err: ErrNegativePoints}
		}
	}

	// Sorted so the reported driver does not depend on map order
	var unknown []string
	for name := range race.Results {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &Error{Op: "validate", Race: race.Race, Driver: unknown[0], Err: ErrUnknownDriver}
	}

	return nil
}

// TotalPoints sums a driver's points over all races.
// A race without an entry for the driver is malformed input, not zero.
func TotalPoints(races []models.RaceResult, driver string) (int, error) {
	total := 0
	for _, race := range races {
		pts, ok := race.Results[driver]
		if !ok {
			return 0, &Error{Op: "total points", Race: race.Race, Driver: driver, Err: ErrMissingDriverResult}
		}
		total += pts
	}
	return total, nil
}

// DriverStandings ranks drivers by total points.
// Ties keep the configured driver order.
func DriverStandings(drivers []models.Driver, races []models.RaceResult) ([]models.DriverStanding, error) {
	if err := Validate(drivers, races); err != nil {
		return nil, err
	}

	result := make([]models.DriverStanding, len(drivers))
	leader := 0
	for i, d := range drivers {
		total, err := TotalPoints(races, d.Name)
		if err != nil {
			return nil, err
		}
		result[i] = models.DriverStanding{
			Driver: d.Name,
			Team:   d.Team,
			Color:  d.Color,
			Points: total,
		}
		if total > leader {
			leader = total
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Points > result[j].Points
	})

	for i := range result {
		result[i].Position = i + 1
		result[i].Gap = leader - result[i].Points
	}

	return result, nil
}

// ConstructorStandings ranks teams by the summed totals of their drivers.
// Ties keep the order in which teams first appear in the driver list.
func ConstructorStandings(drivers []models.Driver, races []models.RaceResult) ([]models.TeamStanding, error) {
	if err := Validate(drivers, races); err != nil {
		return nil, err
	}

	teams := Teams(drivers)
	totals := make(map[string]int, len(teams))
	members := make(map[string][]string, len(teams))
	for _, d := range drivers {
		total, err := TotalPoints(races, d.Name)
		if err != nil {
			return nil, err
		}
		totals[d.Team] += total
		members[d.Team] = append(members[d.Team], d.Name)
	}

	result := make([]models.TeamStanding, len(teams))
	leader := 0
	for i, team := range teams {
		result[i] = models.TeamStanding{
			Team:    team,
			Drivers: members[team],
			Points:  totals[team],
		}
		if totals[team] > leader {
			leader = totals[team]
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Points > result[j].Points
	})

	for i := range result {
		result[i].Position = i + 1
		result[i].Gap = leader - result[i].Points
	}

	return result, nil
}

// PositionsForDriver reports where the driver placed in each race on its own,
// not cumulatively.
func PositionsForDriver(drivers []models.Driver, races []models.RaceResult, driver string) ([]models.RacePosition, error) {
	if err := Validate(drivers, races); err != nil {
		return nil, err
	}
	if _, err := FindDriver(drivers, driver); err != nil {
		return nil, err
	}

	positions := make([]models.RacePosition, 0, len(races))
	for _, race := range races {
		for _, entry := range rankRace(drivers, race) {
			if entry.Driver == driver {
				positions = append(positions, models.RacePosition{
					Race:     race.Race,
					Position: entry.Position,
					Points:   entry.Points,
				})
				break
			}
		}
	}
	return positions, nil
}

// PositionsForTeam reports the team's placing and points in each race
func PositionsForTeam(drivers []models.Driver, races []models.RaceResult, team string) ([]models.TeamRacePosition, error) {
	if err := Validate(drivers, races); err != nil {
		return nil, err
	}
	if _, err := TeamDrivers(drivers, team); err != nil {
		return nil, err
	}

	positions := make([]models.TeamRacePosition, 0, len(races))
	for _, race := range races {
		for _, entry := range rankTeams(drivers, race) {
			if entry.Team == team {
				positions = append(positions, models.TeamRacePosition{
					Race:     race.Race,
					Position: entry.Position,
					Points:   entry.Points,
				})
				break
			}
		}
	}
	return positions, nil
}

// RaceDetail ranks drivers and teams within a single race
func RaceDetail(drivers []models.Driver, race models.RaceResult) (models.RaceDetail, error) {
	if err := ValidateRace(drivers, race); err != nil {
		return models.RaceDetail{}, err
	}

	detail := models.RaceDetail{
		Race:    race.Race,
		Drivers: rankRace(drivers, race),
		Teams:   rankTeams(drivers, race),
	}
	if len(detail.Drivers) > 0 {
		detail.WinnerDriver = detail.Drivers[0].Driver
	}
	if len(detail.Teams) > 0 {
		detail.WinnerTeam = detail.Teams[0].Team
	}
	return detail, nil
}

// CumulativePointsSeries returns every driver's running total after each race
func CumulativePointsSeries(drivers []models.Driver, races []models.RaceResult) ([]models.ProgressPoint, error) {
	if err := Validate(drivers, races); err != nil {
		return nil, err
	}

	running := make(map[string]int, len(drivers))
	series := make([]models.ProgressPoint, 0, len(races))
	for _, race := range races {
		snapshot := make(map[string]int, len(drivers))
		for _, d := range drivers {
			running[d.Name] += race.Results[d.Name]
			snapshot[d.Name] = running[d.Name]
		}
		series = append(series, models.ProgressPoint{
			Race:           race.Race,
			PointsByDriver: snapshot,
		})
	}
	return series, nil
}

// ChartScale is the y-axis maximum for a progress chart:
// the highest running total plus 10%, rounded up.
func ChartScale(series []models.ProgressPoint) int {
	highest := 0
	for _, p := range series {
		for _, pts := range p.PointsByDriver {
			if pts > highest {
				highest = pts
			}
		}
	}
	return (highest*11 + 9) / 10
}

// Dashboard computes everything the main view shows for a season
func Dashboard(season models.Season) (models.Dashboard, error) {
	drivers, err := DriverStandings(season.Drivers, season.Races)
	if err != nil {
		return models.Dashboard{}, err
	}
	constructors, err := ConstructorStandings(season.Drivers, season.Races)
	if err != nil {
		return models.Dashboard{}, err
	}
	series, err := CumulativePointsSeries(season.Drivers, season.Races)
	if err != nil {
		return models.Dashboard{}, err
	}

	return models.Dashboard{
		Title:        season.Title,
		NextRace:     season.NextRace,
		Drivers:      drivers,
		Constructors: constructors,
		Progress:     series,
		ChartMax:     ChartScale(series),
	}, nil
}

// Teams lists team names in the order they first appear among drivers
func Teams(drivers []models.Driver) []string {
	seen := make(map[string]bool)
	var teams []string
	for _, d := range drivers {
		if !seen[d.Team] {
			seen[d.Team] = true
			teams = append(teams, d.Team)
		}
	}
	return teams
}

// TeamDrivers lists the drivers of a team in configured order
func TeamDrivers(drivers []models.Driver, team string) ([]string, error) {
	var names []string
	for _, d := range drivers {
		if d.Team == team {
			names = append(names, d.Name)
		}
	}
	if len(names) == 0 {
		return nil, &Error{Op: "team drivers", Team: team, Err: ErrUnknownTeam}
	}
	return names, nil
}

// FindDriver looks up a configured driver by name
func FindDriver(drivers []models.Driver, name string) (models.Driver, error) {
	for _, d := range drivers {
		if d.Name == name {
			return d, nil
		}
	}
	return models.Driver{}, &Error{Op: "find driver", Driver: name, Err: ErrUnknownDriver}
}

// FindRace looks up a race by name
func FindRace(races []models.RaceResult, name string) (models.RaceResult, error) {
	for _, race := range races {
		if race.Race == name {
			return race, nil
		}
	}
	return models.RaceResult{}, &Error{Op: "find race", Race: name, Err: ErrUnknownRace}
}

// rankRace sorts one race's driver points, ties by configured order.
// The race must already be validated.
func rankRace(drivers []models.Driver, race models.RaceResult) []models.DriverRacePoints {
	ranked := make([]models.DriverRacePoints, len(drivers))
	for i, d := range drivers {
		ranked[i] = models.DriverRacePoints{
			Driver: d.Name,
			Team:   d.Team,
			Color:  d.Color,
			Points: race.Results[d.Name],
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

// rankTeams sums one race's points per team, ties by first appearance
func rankTeams(drivers []models.Driver, race models.RaceResult) []models.TeamRacePoints {
	teams := Teams(drivers)
	sums := make(map[string]int, len(teams))
	for _, d := range drivers {
		sums[d.Team] += race.Results[d.Name]
	}

	ranked := make([]models.TeamRacePoints, len(teams))
	for i, team := range teams {
		ranked[i] = models.TeamRacePoints{Team: team, Points: sums[team]}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

func driverIndex(drivers []models.Driver) (map[string]int, error) {
	index := make(map[string]int, len(drivers))
	for i, d := range drivers {
		if _, dup := index[d.Name]; dup {
			return nil, &Error{Op: "validate", Driver: d.Name, Err: ErrDuplicateDriver}
		}
		index[d.Name] = i
	}
	return index, nil
}
