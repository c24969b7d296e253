// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dsvg"

	"github.com/danielhkuo/formula-zero/models"
)

const (
	ChartWidth  = 800
	ChartHeight = 400
	chartMargin = 40
	gridLines   = 5
)

var (
	axisColor = color.RGBA{0x88, 0x88, 0x88, 0xff}
	gridColor = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	// Used when a driver's colour cannot be parsed
	fallbackColor = color.RGBA{0x33, 0x33, 0x33, 0xff}
)

// ProgressChart draws the cumulative points series as an SVG line chart,
// one polyline per driver in the driver's colour. The x axis starts at
// zero points before the first race; the y axis runs to scale.
func ProgressChart(w io.Writer, drivers []models.Driver, series []models.ProgressPoint, scale int) error {
	if scale <= 0 {
		scale = 1
	}

	dest := draw2dsvg.NewSvg()
	dest.Width = strconv.Itoa(ChartWidth)
	dest.Height = strconv.Itoa(ChartHeight)
	gc := draw2dsvg.NewGraphicContext(dest)

	plotW := float64(ChartWidth - 2*chartMargin)
	plotH := float64(ChartHeight - 2*chartMargin)
	left := float64(chartMargin)
	bottom := float64(ChartHeight - chartMargin)

	steps := len(series)
	if steps == 0 {
		steps = 1
	}
	x := func(i int) float64 { return left + plotW*float64(i)/float64(steps) }
	y := func(pts int) float64 { return bottom - plotH*float64(pts)/float64(scale) }

	gc.SetLineWidth(1)
	gc.SetStrokeColor(gridColor)
	for i := 1; i <= gridLines; i++ {
		gy := bottom - plotH*float64(i)/gridLines
		line(gc, left, gy, left+plotW, gy)
	}

	gc.SetStrokeColor(axisColor)
	line(gc, left, bottom, left+plotW, bottom)
	line(gc, left, bottom, left, bottom-plotH)

	gc.SetLineWidth(2)
	for _, d := range drivers {
		gc.SetStrokeColor(parseHexColor(d.Color))
		gc.BeginPath()
		gc.MoveTo(x(0), y(0))
		for i, p := range series {
			gc.LineTo(x(i+1), y(p.PointsByDriver[d.Name]))
		}
		gc.Stroke()
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if err := xml.NewEncoder(w).Encode(dest); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return nil
}

func line(gc draw2d.GraphicContext, x1, y1, x2, y2 float64) {
	gc.BeginPath()
	gc.MoveTo(x1, y1)
	gc.LineTo(x2, y2)
	gc.Stroke()
}

// parseHexColor accepts #RGB and #RRGGBB
func parseHexColor(s string) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallbackColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackColor
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}
