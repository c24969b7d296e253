// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render turns computed standings into text tables and SVG charts.

Text output uses go-pretty tables with rounded borders and ordinal
positions ("1st", "2nd"):

	render.Standings(w, dashboard)
	render.RaceTable(w, detail)

The progress chart is an SVG drawn with draw2d:

	err := render.ProgressChart(w, season.Drivers, series, standings.ChartScale(series))

Nothing here computes standings; callers pass engine output.
*/
package render
