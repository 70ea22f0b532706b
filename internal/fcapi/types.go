package fcapi

import (
	"encoding/json"
	"time"
)

// User is a forecasting API user.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// Account belongs to exactly one user. Selection is client-side state, the
// account record itself is never mutated here.
type Account struct {
	ID             int     `json:"id"`
	UserID         int     `json:"user_id"`
	Name           string  `json:"name"`
	CurrentBalance float64 `json:"current_balance"`
}

// AlertKind discriminates the two alert shapes the API is known to emit.
type AlertKind int

const (
	AlertDate AlertKind = iota
	AlertMessage
)

// Alert is one low-balance warning from a forecast. Older servers emit a
// bare ISO date, newer ones a descriptive string; both decode into the
// tagged form here so views never branch on payload shape.
type Alert struct {
	Kind    AlertKind
	Date    time.Time
	Message string
}

func (a *Alert) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		a.Kind = AlertDate
		a.Date = parsed
		return nil
	}
	a.Kind = AlertMessage
	a.Message = raw
	return nil
}

func (a Alert) String() string {
	if a.Kind == AlertDate {
		return a.Date.Format("2006-01-02")
	}
	return a.Message
}

// Event is an upcoming bill or transaction occurrence inside the forecast
// window.
type Event struct {
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// Forecast is the raw forecast payload. Balances map date keys to projected
// amounts; the map's iteration order carries no meaning.
type Forecast struct {
	Balances map[string]float64 `json:"balances"`
	Alerts   []Alert            `json:"alerts"`
	Events   []Event            `json:"events"`
}
