package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F15B5B"))
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F15B5B"))
	headingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true)
)

func renderTitle() string {
	raw := []string{
		"█▀█ █ █ █▄ █ █ █ █ ▄▀█ █▄█",
		"█▀▄ █▄█ █ ▀█ ▀▄▀▄▀ █▀█  █ ",
		"▀ ▀ ▀▀▀ ▀  ▀  ▀ ▀  ▀ ▀  ▀ ",
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87CEEB")).
		Bold(true)
	rows := make([]string, 0, len(raw))
	for _, line := range raw {
		rows = append(rows, style.Render(line))
	}
	return strings.Join(rows, "\n")
}

func (m model) layoutWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	layoutWidth := m.layoutWidth()
	title := lipgloss.PlaceHorizontal(layoutWidth, lipgloss.Center, renderTitle())

	sections := []string{title, ""}

	switch m.phase {
	case phaseBootstrapping:
		sections = append(sections, center(layoutWidth, dimStyle.Render("loading...")))
		return strings.Join(sections, "\n")

	case phaseBootstrapFailed:
		sections = append(sections, center(layoutWidth, errorStyle.Render(m.bootstrapErr)))
		return strings.Join(sections, "\n")
	}

	sections = append(sections, center(layoutWidth, m.renderAccountSelector()), "")

	if m.overrideOpen {
		sections = append(sections, m.renderOverrideForm(layoutWidth))
		return strings.Join(sections, "\n")
	}

	switch m.phase {
	case phaseLoading:
		sections = append(sections, center(layoutWidth, dimStyle.Render("loading forecast...")))

	case phaseForecastFailed:
		sections = append(sections, center(layoutWidth, errorStyle.Render(m.forecastErr)))

	case phaseReady:
		sections = append(sections, m.renderForecastBody(layoutWidth))
	}

	if m.feedback != "" {
		sections = append(sections, "", center(layoutWidth, positiveStyle.Render(m.feedback)))
	}
	sections = append(sections, "", center(layoutWidth, m.renderFooter()))

	return strings.Join(sections, "\n")
}

func center(layoutWidth int, s string) string {
	return lipgloss.PlaceHorizontal(layoutWidth, lipgloss.Center, s)
}

func (m model) renderAccountSelector() string {
	if len(m.accounts) == 0 {
		return dimStyle.Render("no accounts found")
	}

	parts := make([]string, 0, len(m.accounts))
	for i, account := range m.accounts {
		label := fmt.Sprintf("%s ($%.2f)", account.Name, account.CurrentBalance)
		if i == m.selected {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFD54A")).
				Bold(true).
				Render("[ "+label+" ]"))
			continue
		}
		parts = append(parts, dimStyle.Render(label))
	}
	return strings.Join(parts, "   ")
}

func (m model) renderForecastBody(layoutWidth int) string {
	var body string
	switch m.viewMode {
	case viewModeCalendar:
		body = m.renderCalendarView()
	case viewModeGraph:
		body = m.renderGraphView()
	default:
		body = m.renderListView()
	}
	body = center(layoutWidth, body)

	sections := []string{body}
	if alerts := m.renderAlerts(); alerts != "" {
		sections = append(sections, "", center(layoutWidth, alerts))
	}
	if events := m.renderEvents(); events != "" {
		sections = append(sections, "", center(layoutWidth, events))
	}
	return strings.Join(sections, "\n")
}

func (m model) renderListView() string {
	if len(m.series) == 0 {
		return dimStyle.Render("no forecast data")
	}

	header := lipgloss.NewStyle().Bold(true).Render(
		padRight("date", 14) + padLeft("balance", 12),
	)
	rows := []string{header, strings.Repeat("─", 26)}
	for _, point := range m.series {
		amount := fmt.Sprintf("%.2f", point.Amount)
		styled := positiveStyle.Render(padLeft(amount, 12))
		if point.Amount < 0 {
			styled = negativeStyle.Render(padLeft(amount, 12))
		}
		rows = append(rows, padRight(point.Date, 14)+styled)
	}
	return strings.Join(rows, "\n")
}

func (m model) renderAlerts() string {
	if len(m.alerts) == 0 {
		return ""
	}

	lines := []string{headingStyle.Render("alerts")}
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24"))
	for _, alert := range m.alerts {
		lines = append(lines, warnStyle.Render("! "+alert.String()))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderEvents() string {
	if len(m.events) == 0 {
		return ""
	}

	lines := []string{headingStyle.Render("upcoming events")}
	for _, event := range m.events {
		amount := fmt.Sprintf("%.2f", event.Amount)
		styled := positiveStyle.Render(padLeft(amount, 10))
		if event.Amount < 0 {
			styled = negativeStyle.Render(padLeft(amount, 10))
		}
		lines = append(lines, fmt.Sprintf(
			"%s %s %s%s",
			padRight(event.Date, 12),
			padRight(event.Type, 12),
			padRight(event.Name, 20),
			styled,
		))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderFooter() string {
	mode := [...]string{"list", "calendar", "graph"}[m.viewMode]
	return dimStyle.Render(fmt.Sprintf(
		"view: %s   v switch view   ←/→ switch account   o override   r reload   q quit",
		mode,
	))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
