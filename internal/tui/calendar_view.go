package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcalder/runway/internal/forecast"
)

const calendarCellWidth = 10

// renderCalendarView lays out one month grid per covered month. Days with a
// balance point show the projected amount; other days render empty.
func (m model) renderCalendarView() string {
	first, last, ok := forecast.Window(m.series)
	if !ok {
		return dimStyle.Render("no forecast data")
	}

	index := forecast.ByDate(m.series)

	months := make([]string, 0, 4)
	cursor := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(last) {
		months = append(months, renderCalendarMonth(cursor, index))
		cursor = cursor.AddDate(0, 1, 0)
	}

	return strings.Join(months, "\n\n")
}

func renderCalendarMonth(month time.Time, index map[string]forecast.BalancePoint) string {
	header := headingStyle.Render(month.Format("January 2006"))

	weekdayCells := make([]string, 0, 7)
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		weekdayCells = append(weekdayCells, padRight(name, calendarCellWidth))
	}
	weekdayRow := dimStyle.Render(strings.Join(weekdayCells, ""))

	lastDay := month.AddDate(0, 1, -1).Day()
	startOffset := int(month.Weekday())

	rows := []string{header, weekdayRow}
	week := make([]string, 0, 7)
	for i := 0; i < startOffset; i++ {
		week = append(week, strings.Repeat(" ", calendarCellWidth))
	}

	for day := 1; day <= lastDay; day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
		week = append(week, renderCalendarCell(day, date, index))
		if len(week) == 7 {
			rows = append(rows, strings.Join(week, ""))
			week = week[:0]
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, strings.Repeat(" ", calendarCellWidth))
		}
		rows = append(rows, strings.Join(week, ""))
	}

	return strings.Join(rows, "\n")
}

func renderCalendarCell(day int, date time.Time, index map[string]forecast.BalancePoint) string {
	dayLabel := fmt.Sprintf("%2d", day)

	point, ok := index[date.Format("2006-01-02")]
	if !ok {
		blank := strings.Repeat(" ", calendarCellWidth-len(dayLabel))
		return dimStyle.Render(dayLabel) + blank
	}

	amount := fmt.Sprintf("%.0f", point.Amount)
	amount = padLeft(amount, calendarCellWidth-len(dayLabel)-1)
	styled := positiveStyle.Render(amount)
	if point.Amount < 0 {
		styled = negativeStyle.Render(amount)
	}
	return lipgloss.NewStyle().Bold(true).Render(dayLabel) + " " + styled
}
