package fcapi

import (
	"context"
	"net/url"
	"strconv"
)

// Forecast request defaults, applied when the caller passes zero values.
const (
	DefaultHorizonMonths = 3
	DefaultBufferAmount  = 50.0
)

// GetForecast calls GET /forecast for one account. months and buffer fall
// back to the API defaults when months <= 0 or buffer < 0.
func (c *Client) GetForecast(
	ctx context.Context,
	accountID int,
	months int,
	buffer float64,
) (*Forecast, error) {
	if months <= 0 {
		months = DefaultHorizonMonths
	}
	if buffer < 0 {
		buffer = DefaultBufferAmount
	}

	query := url.Values{}
	query.Set("account_id", strconv.Itoa(accountID))
	query.Set("months", strconv.Itoa(months))
	query.Set("buffer", strconv.FormatFloat(buffer, 'f', -1, 64))

	var out Forecast
	if err := c.get(ctx, "/forecast", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
