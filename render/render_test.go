// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/danielhkuo/formula-zero/models"
)

func testDashboard() models.Dashboard {
	return models.Dashboard{
		Title:    "Sezóna 2024/25",
		NextRace: "Hungarian Grand Prix",
		Drivers: []models.DriverStanding{
			{Position: 1, Driver: "Dominik", Team: "McLaren", Points: 22, Gap: 0},
			{Position: 2, Driver: "Olda", Team: "Porsche", Points: 14, Gap: 8},
			{Position: 3, Driver: "Kuba", Team: "Porsche", Points: 12, Gap: 10},
		},
		Constructors: []models.TeamStanding{
			{Position: 1, Team: "Porsche", Drivers: []string{"Kuba", "Olda"}, Points: 26, Gap: 0},
			{Position: 2, Team: "McLaren", Drivers: []string{"Dominik"}, Points: 22, Gap: 4},
		},
		Progress: []models.ProgressPoint{
			{Race: "Brazílie", PointsByDriver: map[string]int{"Dominik": 11, "Kuba": 4, "Olda": 8}},
			{Race: "Imola", PointsByDriver: map[string]int{"Dominik": 22, "Kuba": 12, "Olda": 14}},
		},
		ChartMax: 25,
	}
}

func TestStandings(t *testing.T) {
	var b bytes.Buffer
	Standings(&b, testDashboard())
	out := b.String()

	for _, want := range []string{
		"Sezóna 2024/25",
		"Next race: Hungarian Grand Prix",
		"After 2 races",
		"1st", "2nd", "3rd",
		"Dominik", "Kuba, Olda",
		"-8", "-10", "-4",
		"╭", // rounded style
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}

	// Drivers table comes before constructors
	if strings.Index(out, "Dominik") > strings.Index(out, "Kuba, Olda") {
		t.Errorf("Expected drivers table first\n%s", out)
	}
}

func TestRaceTable(t *testing.T) {
	var b bytes.Buffer
	RaceTable(&b, models.RaceDetail{
		Race: "Kanada",
		Drivers: []models.DriverRacePoints{
			{Position: 1, Driver: "Macim", Team: "McLaren", Points: 10},
			{Position: 2, Driver: "Kuba", Team: "Porsche", Points: 8},
		},
		Teams: []models.TeamRacePoints{
			{Position: 1, Team: "McLaren", Points: 10},
			{Position: 2, Team: "Porsche", Points: 8},
		},
		WinnerDriver: "Macim",
		WinnerTeam:   "McLaren",
	})
	out := b.String()

	for _, want := range []string{"Kanada", "Macim", "McLaren", "1st", "2nd"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}

func TestProgressTable(t *testing.T) {
	d := testDashboard()
	drivers := []models.Driver{{Name: "Dominik"}, {Name: "Olda"}, {Name: "Kuba"}}

	var b bytes.Buffer
	ProgressTable(&b, drivers, d.Progress)
	out := b.String()

	for _, want := range []string{"Brazílie", "Imola", "Dominik", "22", "14"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}

func TestProgressTable_KeepsRaceNameCase(t *testing.T) {
	drivers := []models.Driver{{Name: "Dominik"}, {Name: "Míra"}}
	series := []models.ProgressPoint{
		{Race: "Great Britain", PointsByDriver: map[string]int{"Dominik": 11, "Míra": 1}},
	}

	var b bytes.Buffer
	ProgressTable(&b, drivers, series)
	out := b.String()

	if !strings.Contains(out, "Great Britain") {
		t.Errorf("Expected race name as stored\n%s", out)
	}
	if strings.Contains(out, "GREAT BRITAIN") {
		t.Errorf("Header must not be uppercased\n%s", out)
	}
}

func TestProfileTables(t *testing.T) {
	var b bytes.Buffer
	DriverProfileTable(&b, models.DriverProfile{
		Driver:        models.Driver{Name: "Macim", Team: "McLaren"},
		Rank:          2,
		TotalPoints:   42,
		BestResult:    10,
		BestRace:      "Kanada",
		AveragePoints: 7.0,
		BestPosition:  1,
		Positions:     []models.RacePosition{{Race: "Kanada", Position: 1, Points: 10}},
	})
	TeamProfileTable(&b, models.TeamProfile{
		Team:          "Porsche",
		Drivers:       []string{"Kuba", "Olda"},
		Rank:          2,
		TotalPoints:   73,
		BestRace:      "Imola",
		BestRacePts:   14,
		AveragePoints: 12.2,
		BestPosition:  2,
		Positions:     []models.TeamRacePosition{{Race: "Imola", Position: 2, Points: 14}},
	})
	out := b.String()

	for _, want := range []string{"Macim (McLaren)", "Kanada", "7.0", "Porsche", "Imola (14)", "12.2", "Kuba, Olda"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}

func TestProgressChart(t *testing.T) {
	d := testDashboard()
	drivers := []models.Driver{
		{Name: "Dominik", Color: "#FF1E1E"},
		{Name: "Olda", Color: "#00A3FF"},
		{Name: "Kuba", Color: "not-a-colour"},
	}

	var b bytes.Buffer
	if err := ProgressChart(&b, drivers, d.Progress, d.ChartMax); err != nil {
		t.Fatalf("ProgressChart() error = %v", err)
	}
	out := b.String()

	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("Expected XML header, got %.40q", out)
	}
	if !strings.Contains(out, "<svg") {
		t.Error("Expected an svg element")
	}

	// Must be well-formed XML
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			if err != io.EOF {
				t.Fatalf("Chart is not well-formed XML: %v", err)
			}
			break
		}
	}

	// Grid, two axes and one path per driver
	if n := strings.Count(out, "<path"); n < len(drivers)+2 {
		t.Errorf("Expected at least %d paths, got %d", len(drivers)+2, n)
	}
}

func TestProgressChart_EmptySeason(t *testing.T) {
	var b bytes.Buffer
	if err := ProgressChart(&b, nil, nil, 0); err != nil {
		t.Fatalf("ProgressChart() error = %v", err)
	}
	if !strings.Contains(b.String(), "<svg") {
		t.Error("Expected an svg element for an empty season")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"#FF1E1E", color.RGBA{0xff, 0x1e, 0x1e, 0xff}},
		{"0075ff", color.RGBA{0x00, 0x75, 0xff, 0xff}},
		{"#abc", color.RGBA{0xaa, 0xbb, 0xcc, 0xff}},
		{"", fallbackColor},
		{"#GGGGGG", fallbackColor},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseHexColor(tt.in); got != tt.want {
				t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
