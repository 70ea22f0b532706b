package tui

import (
	"fmt"
	"strings"

	"github.com/rcalder/runway/internal/forecast"
)

const (
	chartHeight   = 12
	chartMaxWidth = 72
)

// renderGraphView plots the balance series over time. Values are scaled
// into a fixed-height grid; a zero axis is drawn when the series crosses
// zero so dips below it stand out.
func (m model) renderGraphView() string {
	if len(m.series) == 0 {
		return dimStyle.Render("no forecast data")
	}

	values := sampleSeries(m.series, chartMaxWidth)

	minVal, maxVal := values[0].Amount, values[0].Amount
	for _, point := range values[1:] {
		if point.Amount < minVal {
			minVal = point.Amount
		}
		if point.Amount > maxVal {
			maxVal = point.Amount
		}
	}
	span := maxVal - minVal
	if span == 0 {
		span = 1
	}

	rowFor := func(v float64) int {
		// Row 0 is the top of the grid.
		scaled := (v - minVal) / span * float64(chartHeight-1)
		return chartHeight - 1 - int(scaled+0.5)
	}

	zeroRow := -1
	if minVal < 0 && maxVal > 0 {
		zeroRow = rowFor(0)
	}

	grid := make([][]rune, chartHeight)
	for row := range grid {
		fill := ' '
		if row == zeroRow {
			fill = '┈'
		}
		grid[row] = []rune(strings.Repeat(string(fill), len(values)))
	}
	for col, point := range values {
		grid[rowFor(point.Amount)][col] = '●'
	}

	labelWidth := len(fmt.Sprintf("%.0f", minVal))
	if w := len(fmt.Sprintf("%.0f", maxVal)); w > labelWidth {
		labelWidth = w
	}

	lines := make([]string, 0, chartHeight+1)
	for row := 0; row < chartHeight; row++ {
		label := strings.Repeat(" ", labelWidth)
		switch row {
		case 0:
			label = padLeft(fmt.Sprintf("%.0f", maxVal), labelWidth)
		case chartHeight - 1:
			label = padLeft(fmt.Sprintf("%.0f", minVal), labelWidth)
		case zeroRow:
			label = padLeft("0", labelWidth)
		}

		body := string(grid[row])
		if zeroRow >= 0 && row > zeroRow {
			body = negativeStyle.Render(body)
		} else {
			body = positiveStyle.Render(body)
		}
		lines = append(lines, dimStyle.Render(label)+" │"+body)
	}

	axis := strings.Repeat(" ", labelWidth) + " ╰" + strings.Repeat("─", len(values))
	lines = append(lines, dimStyle.Render(axis))

	firstDate := values[0].Date
	lastDate := values[len(values)-1].Date
	gap := len(values) - len(firstDate) - len(lastDate)
	if gap < 1 {
		gap = 1
	}
	dates := strings.Repeat(" ", labelWidth+2) + firstDate + strings.Repeat(" ", gap) + lastDate
	lines = append(lines, dimStyle.Render(dates))

	return strings.Join(lines, "\n")
}

// sampleSeries thins a long series to at most width points, keeping the
// first and last points so the plotted window matches the table view.
func sampleSeries(series []forecast.BalancePoint, width int) []forecast.BalancePoint {
	if len(series) <= width {
		return series
	}

	sampled := make([]forecast.BalancePoint, 0, width)
	step := float64(len(series)-1) / float64(width-1)
	for i := 0; i < width; i++ {
		sampled = append(sampled, series[int(float64(i)*step+0.5)])
	}
	sampled[width-1] = series[len(series)-1]
	return sampled
}
