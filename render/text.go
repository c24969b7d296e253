// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/danielhkuo/formula-zero/models"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	// Race and driver names are lookup keys, print them as stored
	t.Style().Format.Header = text.FormatDefault
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func gap(g int) string {
	if g == 0 {
		return ""
	}
	return fmt.Sprintf("-%d", g)
}

// DriverTable prints the driver championship
func DriverTable(w io.Writer, title string, rows []models.DriverStanding) {
	t := newTable(w, title)
	t.AppendHeader(table.Row{"Pos", "Driver", "Team", "Points", "Gap"})
	for _, s := range rows {
		t.AppendRow(table.Row{humanize.Ordinal(s.Position), s.Driver, s.Team, s.Points, gap(s.Gap)})
	}
	t.Render()
}

// ConstructorTable prints the constructor championship
func ConstructorTable(w io.Writer, title string, rows []models.TeamStanding) {
	t := newTable(w, title)
	t.AppendHeader(table.Row{"Pos", "Team", "Drivers", "Points", "Gap"})
	for _, s := range rows {
		t.AppendRow(table.Row{humanize.Ordinal(s.Position), s.Team, strings.Join(s.Drivers, ", "), s.Points, gap(s.Gap)})
	}
	t.Render()
}

// RaceTable prints one race's driver and team results
func RaceTable(w io.Writer, detail models.RaceDetail) {
	t := newTable(w, detail.Race)
	t.AppendHeader(table.Row{"Pos", "Driver", "Team", "Points"})
	for _, d := range detail.Drivers {
		t.AppendRow(table.Row{humanize.Ordinal(d.Position), d.Driver, d.Team, d.Points})
	}
	t.Render()

	teams := newTable(w, "")
	teams.AppendHeader(table.Row{"Pos", "Team", "Points"})
	for _, tm := range detail.Teams {
		teams.AppendRow(table.Row{humanize.Ordinal(tm.Position), tm.Team, tm.Points})
	}
	teams.Render()
}

// ProgressTable prints running totals, one row per driver and one column per race
func ProgressTable(w io.Writer, drivers []models.Driver, series []models.ProgressPoint) {
	t := newTable(w, "Progress")

	header := table.Row{"Driver"}
	for _, p := range series {
		header = append(header, p.Race)
	}
	t.AppendHeader(header)

	for _, d := range drivers {
		row := table.Row{d.Name}
		for _, p := range series {
			row = append(row, p.PointsByDriver[d.Name])
		}
		t.AppendRow(row)
	}
	t.Render()
}

// DriverProfileTable prints a driver's season summary and per-race placings
func DriverProfileTable(w io.Writer, p models.DriverProfile) {
	summary := newTable(w, fmt.Sprintf("%s (%s)", p.Driver.Name, p.Driver.Team))
	summary.AppendRows([]table.Row{
		{"Championship", humanize.Ordinal(p.Rank)},
		{"Points", p.TotalPoints},
		{"Best result", fmt.Sprintf("%d (%s)", p.BestResult, p.BestRace)},
		{"Average", fmt.Sprintf("%.1f", p.AveragePoints)},
		{"Best finish", humanize.Ordinal(p.BestPosition)},
	})
	summary.Render()

	positionTable(w, p.Positions)
}

// TeamProfileTable prints a team's season summary and per-race placings
func TeamProfileTable(w io.Writer, p models.TeamProfile) {
	summary := newTable(w, p.Team)
	summary.AppendRows([]table.Row{
		{"Drivers", strings.Join(p.Drivers, ", ")},
		{"Championship", humanize.Ordinal(p.Rank)},
		{"Points", p.TotalPoints},
		{"Best race", fmt.Sprintf("%s (%d)", p.BestRace, p.BestRacePts)},
		{"Average", fmt.Sprintf("%.1f", p.AveragePoints)},
		{"Best finish", humanize.Ordinal(p.BestPosition)},
	})
	summary.Render()

	positions := make([]models.RacePosition, len(p.Positions))
	for i, pos := range p.Positions {
		positions[i] = models.RacePosition(pos)
	}
	positionTable(w, positions)
}

func positionTable(w io.Writer, positions []models.RacePosition) {
	t := newTable(w, "")
	t.AppendHeader(table.Row{"Race", "Pos", "Points"})
	for _, pos := range positions {
		t.AppendRow(table.Row{pos.Race, humanize.Ordinal(pos.Position), pos.Points})
	}
	t.Render()
}

// Standings prints the dashboard header and both championships
func Standings(w io.Writer, d models.Dashboard) {
	if d.Title != "" {
		fmt.Fprintln(w, d.Title)
	}
	if d.NextRace != "" {
		fmt.Fprintf(w, "Next race: %s\n", d.NextRace)
	}
	fmt.Fprintf(w, "After %s\n\n", english.Plural(len(d.Progress), "race", ""))

	DriverTable(w, "Drivers", d.Drivers)
	fmt.Fprintln(w)
	ConstructorTable(w, "Constructors", d.Constructors)
}
