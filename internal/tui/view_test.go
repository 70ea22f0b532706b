package tui

import (
	"strings"
	"testing"

	"github.com/rcalder/runway/internal/fcapi"
)

func readyModel(t *testing.T) (model, *fakeGateway) {
	t.Helper()
	fake := &fakeGateway{
		users:    []fcapi.User{{ID: 1, Email: "user@example.com"}},
		accounts: []fcapi.Account{{ID: 1, UserID: 1, Name: "Checking", CurrentBalance: 300}},
		forecasts: map[int]*fcapi.Forecast{
			1: {
				Balances: map[string]float64{"2024-03-05": -20, "2024-03-01": 100},
				Alerts:   []fcapi.Alert{mustAlert(t, `"2024-03-05"`)},
				Events: []fcapi.Event{
					{Type: "bill", Name: "Rent", Amount: -120, Date: "2024-03-05"},
				},
			},
		},
	}
	m := newTestModel(fake)
	m = pump(t, m, m.Init())
	if m.phase != phaseReady {
		t.Fatalf("setup: phase = %v, want phaseReady", m.phase)
	}
	return m, fake
}

func mustAlert(t *testing.T, raw string) fcapi.Alert {
	t.Helper()
	var alert fcapi.Alert
	if err := alert.UnmarshalJSON([]byte(raw)); err != nil {
		t.Fatalf("decode alert %s: %v", raw, err)
	}
	return alert
}

func TestViewRendersForecastTable(t *testing.T) {
	m, _ := readyModel(t)

	out := m.View()
	for _, want := range []string{"2024-03-01", "2024-03-05", "Checking", "alerts", "Rent"} {
		if !strings.Contains(out, want) {
			t.Fatalf("View() missing %q:\n%s", want, out)
		}
	}
}

func TestViewRendersEachMode(t *testing.T) {
	m, _ := readyModel(t)

	for _, mode := range []int{viewModeList, viewModeCalendar, viewModeGraph} {
		m.viewMode = mode
		out := m.View()
		if strings.TrimSpace(out) == "" {
			t.Fatalf("View() empty in mode %d", mode)
		}
	}

	m.viewMode = viewModeCalendar
	if !strings.Contains(m.View(), "March 2024") {
		t.Fatal("calendar view missing month header")
	}
}

func TestViewHidesForecastOnFailure(t *testing.T) {
	m, _ := readyModel(t)

	m.phase = phaseForecastFailed
	m.series = nil
	m.alerts = nil
	m.events = nil
	m.forecastErr = forecastFailureText

	out := m.View()
	if !strings.Contains(out, forecastFailureText) {
		t.Fatalf("View() missing failure message:\n%s", out)
	}
	for _, stale := range []string{"2024-03-01", "2024-03-05", "Rent"} {
		if strings.Contains(out, stale) {
			t.Fatalf("View() still renders %q after failure", stale)
		}
	}
}

func TestViewShowsBootstrapFailureOnly(t *testing.T) {
	m := newTestModel(&fakeGateway{})
	m.phase = phaseBootstrapFailed
	m.bootstrapErr = usersFailureText

	out := m.View()
	if !strings.Contains(out, usersFailureText) {
		t.Fatalf("View() missing bootstrap failure:\n%s", out)
	}
	if strings.Contains(out, "switch account") {
		t.Fatal("View() renders interactive footer after fatal bootstrap failure")
	}
}
