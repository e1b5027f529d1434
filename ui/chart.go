package ui

import (
	"fmt"
	"strings"

	"gridbayes/domain/inference"
)

// ChartConfig holds presentation parameters for the overlay chart. These are
// cosmetics only; they are passed explicitly to the builder, never held as
// process-wide state.
type ChartConfig struct {
	Width   int
	Height  int
	MarginX int
	MarginY int

	LikelihoodColor string
	PriorColor      string
	PosteriorColor  string

	XTickCount int
}

// DefaultChartConfig returns the standard chart cosmetics
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:           860,
		Height:          420,
		MarginX:         50,
		MarginY:         30,
		LikelihoodColor: "#2563eb",
		PriorColor:      "#16a34a",
		PosteriorColor:  "#dc2626",
		XTickCount:      9,
	}
}

// Series is one SVG polyline of the overlay chart
type Series struct {
	Label  string
	Color  string
	Points string // SVG polyline points attribute
}

// Tick is one labeled x-axis position
type Tick struct {
	X     float64
	Y     float64
	Label string
}

// ChartView is everything the template needs to draw the overlay chart
type ChartView struct {
	Config ChartConfig
	Series []Series
	XTicks []Tick
}

// BuildOverlay maps the three display-normalized curves onto a shared pixel
// space so they overlay on a single chart with one y scale.
func BuildOverlay(cfg ChartConfig, result *inference.RunResult) ChartView {
	series := []struct {
		label  string
		color  string
		values []float64
	}{
		{"likelihood", cfg.LikelihoodColor, result.LikelihoodDisplay},
		{"prior", cfg.PriorColor, result.PriorDisplay},
		{"posterior", cfg.PosteriorColor, result.Posterior},
	}

	yMax := 0.0
	for _, s := range series {
		for _, v := range s.values {
			if v > yMax {
				yMax = v
			}
		}
	}
	if yMax == 0 {
		yMax = 1
	}

	view := ChartView{Config: cfg}
	for _, s := range series {
		view.Series = append(view.Series, Series{
			Label:  s.label,
			Color:  s.color,
			Points: polylinePoints(cfg, result.Grid, s.values, yMax),
		})
	}
	view.XTicks = xTicks(cfg, result.Grid)
	return view
}

// polylinePoints projects (theta, value) pairs into SVG pixel coordinates
func polylinePoints(cfg ChartConfig, grid inference.Grid, values []float64, yMax float64) string {
	plotW := float64(cfg.Width - 2*cfg.MarginX)
	plotH := float64(cfg.Height - 2*cfg.MarginY)
	span := grid.Upper - grid.Lower

	var b strings.Builder
	for i, theta := range grid.Points {
		x := float64(cfg.MarginX) + (theta-grid.Lower)/span*plotW
		y := float64(cfg.MarginY) + (1-values[i]/yMax)*plotH
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", x, y)
	}
	return b.String()
}

func xTicks(cfg ChartConfig, grid inference.Grid) []Tick {
	if cfg.XTickCount < 2 {
		return nil
	}

	plotW := float64(cfg.Width - 2*cfg.MarginX)
	ticks := make([]Tick, 0, cfg.XTickCount)
	for i := 0; i < cfg.XTickCount; i++ {
		frac := float64(i) / float64(cfg.XTickCount-1)
		theta := grid.Lower + frac*(grid.Upper-grid.Lower)
		ticks = append(ticks, Tick{
			X:     float64(cfg.MarginX) + frac*plotW,
			Y:     float64(cfg.Height - cfg.MarginY + 16),
			Label: fmt.Sprintf("%.1f", theta),
		})
	}
	return ticks
}
