// Package forecast reshapes raw forecast payloads into the ordered series
// every view renders from.
package forecast

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// BalancePoint is one projected end-of-day balance.
type BalancePoint struct {
	Date   string
	Amount float64
}

// Normalize converts a raw balance mapping into a series sorted ascending
// by date. Map iteration order is never trusted. An empty or nil mapping
// yields an empty series.
func Normalize(balances map[string]float64) []BalancePoint {
	series := make([]BalancePoint, 0, len(balances))
	for date, amount := range balances {
		series = append(series, BalancePoint{Date: date, Amount: amount})
	}
	sort.Slice(series, func(i, j int) bool {
		return dateLess(series[i].Date, series[j].Date)
	})
	return series
}

// dateLess orders two date keys. ISO dates compare correctly as strings,
// but parsed comparison keeps any non-padded keys in calendar order too.
func dateLess(a, b string) bool {
	ta, errA := time.Parse(dateLayout, a)
	tb, errB := time.Parse(dateLayout, b)
	if errA == nil && errB == nil {
		return ta.Before(tb)
	}
	return a < b
}

// Window returns the first and last calendar dates covered by the series.
// ok is false when the series is empty or its boundary dates do not parse.
func Window(series []BalancePoint) (first, last time.Time, ok bool) {
	if len(series) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first, errFirst := time.Parse(dateLayout, series[0].Date)
	last, errLast := time.Parse(dateLayout, series[len(series)-1].Date)
	if errFirst != nil || errLast != nil {
		return time.Time{}, time.Time{}, false
	}
	return first, last, true
}

// ByDate indexes a series by its date key for point lookups.
func ByDate(series []BalancePoint) map[string]BalancePoint {
	index := make(map[string]BalancePoint, len(series))
	for _, point := range series {
		index[point.Date] = point
	}
	return index
}
