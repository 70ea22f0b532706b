package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rcalder/runway/internal/fcapi"
)

func (m *model) resetOverrideForm() {
	m.overrideType = fcapi.EventTypeBill
	m.overrideSkip = false
	m.overrideFocus = overrideFocusType
	m.overrideID.SetValue("")
	m.overrideID.Blur()
	m.overrideDate.SetValue("")
	m.overrideDate.Blur()
	m.overrideAmount.SetValue("")
	m.overrideAmount.Blur()
}

func (m *model) syncOverrideFocus() {
	m.overrideID.Blur()
	m.overrideDate.Blur()
	m.overrideAmount.Blur()
	switch m.overrideFocus {
	case overrideFocusID:
		m.overrideID.Focus()
	case overrideFocusDate:
		m.overrideDate.Focus()
	case overrideFocusAmount:
		m.overrideAmount.Focus()
	}
}

func (m model) handleOverrideKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.overrideOpen = false
		m.overrideErr = ""
		m.resetOverrideForm()
		return m, nil

	case "tab", "down":
		m.overrideFocus = (m.overrideFocus + 1) % (overrideFocusSubmit + 1)
		m.syncOverrideFocus()
		return m, nil

	case "shift+tab", "up":
		m.overrideFocus--
		if m.overrideFocus < 0 {
			m.overrideFocus = overrideFocusSubmit
		}
		m.syncOverrideFocus()
		return m, nil

	case "enter":
		if m.overrideFocus == overrideFocusSkip {
			m.overrideSkip = !m.overrideSkip
			return m, nil
		}
		if m.overrideFocus == overrideFocusSubmit {
			return m.submitOverride()
		}
		m.overrideFocus++
		m.syncOverrideFocus()
		return m, nil
	}

	switch m.overrideFocus {
	case overrideFocusType:
		switch msg.String() {
		case "left", "right", " ":
			if m.overrideType == fcapi.EventTypeBill {
				m.overrideType = fcapi.EventTypeTransaction
			} else {
				m.overrideType = fcapi.EventTypeBill
			}
		}
		return m, nil

	case overrideFocusSkip:
		if msg.String() == " " {
			m.overrideSkip = !m.overrideSkip
		}
		return m, nil

	case overrideFocusID:
		var cmd tea.Cmd
		m.overrideID, cmd = m.overrideID.Update(msg)
		return m, cmd

	case overrideFocusDate:
		var cmd tea.Cmd
		m.overrideDate, cmd = m.overrideDate.Update(msg)
		return m, cmd

	case overrideFocusAmount:
		var cmd tea.Cmd
		m.overrideAmount, cmd = m.overrideAmount.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) submitOverride() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	account, ok := m.selectedAccount()
	if !ok {
		m.overrideErr = "no account selected"
		return m, nil
	}

	req, err := m.buildOverrideRequest(account.ID)
	if err != "" {
		m.overrideErr = err
		return m, nil
	}

	m.overrideErr = ""
	m.submitting = true
	return m, m.submitOverrideCmd(req)
}

// buildOverrideRequest turns form input into a request, or returns a terse
// validation message. An empty amount field stays absent from the payload.
func (m model) buildOverrideRequest(accountID int) (fcapi.OverrideRequest, string) {
	req := fcapi.OverrideRequest{
		EventType: m.overrideType,
		EventDate: strings.TrimSpace(m.overrideDate.Value()),
		Skip:      m.overrideSkip,
		AccountID: accountID,
		UserID:    m.user.ID,
	}

	rawID := strings.TrimSpace(m.overrideID.Value())
	if rawID == "" {
		return req, "event id is required"
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return req, "event id must be a whole number"
	}
	req.EventID = id

	if req.EventDate == "" {
		return req, "event date is required"
	}

	rawAmount := strings.TrimSpace(m.overrideAmount.Value())
	if rawAmount != "" {
		amount, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil {
			return req, "override amount must be a number"
		}
		req.OverrideAmount = &amount
	}

	if err := req.Validate(); err != nil {
		return req, err.Error()
	}

	return req, ""
}

func (m model) renderOverrideForm(layoutWidth int) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Width(10)
	focusedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD54A")).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))

	renderValue := func(focus int, value string) string {
		if m.overrideFocus == focus {
			return focusedStyle.Render(value)
		}
		return valueStyle.Render(value)
	}

	skipBox := "[ ]"
	if m.overrideSkip {
		skipBox = "[x]"
	}
	submitLabel := "submit override"
	if m.submitting {
		submitLabel = "submitting..."
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("override a scheduled event"),
		"",
		labelStyle.Render("type") + renderValue(overrideFocusType, "< "+m.overrideType+" >"),
		labelStyle.Render("event id") + renderValue(overrideFocusID, m.overrideID.View()),
		labelStyle.Render("date") + renderValue(overrideFocusDate, m.overrideDate.View()),
		labelStyle.Render("amount") + renderValue(overrideFocusAmount, m.overrideAmount.View()),
		labelStyle.Render("skip") + renderValue(overrideFocusSkip, skipBox),
		"",
		renderValue(overrideFocusSubmit, "[ "+submitLabel+" ]"),
	}

	if strings.TrimSpace(m.overrideErr) != "" {
		lines = append(lines, "", lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F15B5B")).
			Render("error: "+m.overrideErr))
	}

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")).
		Render("tab to move, enter to submit, esc to cancel")
	lines = append(lines, "", hint)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFFFFF")).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.PlaceHorizontal(layoutWidth, lipgloss.Center, box)
}
