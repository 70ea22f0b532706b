package fcapi

import (
	"context"
	"fmt"
	"time"
)

// Event types accepted by the overrides endpoint.
const (
	EventTypeBill        = "bill"
	EventTypeTransaction = "transaction"
)

// OverrideRequest is a user correction to one scheduled bill or transaction:
// skip it outright, or replace its amount. OverrideAmount stays a pointer so
// an absent amount is omitted from the payload rather than sent as zero.
type OverrideRequest struct {
	EventType      string   `json:"event_type"`
	EventID        int      `json:"event_id"`
	EventDate      string   `json:"event_date"`
	Skip           bool     `json:"skip"`
	OverrideAmount *float64 `json:"override_amount,omitempty"`
	AccountID      int      `json:"account_id"`
	UserID         int      `json:"user_id,omitempty"`
}

// Validate checks the request before it is serialized.
func (r OverrideRequest) Validate() error {
	if r.EventType != EventTypeBill && r.EventType != EventTypeTransaction {
		return fmt.Errorf("event type must be %q or %q", EventTypeBill, EventTypeTransaction)
	}
	if r.EventID <= 0 {
		return fmt.Errorf("event id must be a positive integer")
	}
	if _, err := time.Parse("2006-01-02", r.EventDate); err != nil {
		return fmt.Errorf("event date must be YYYY-MM-DD")
	}
	if r.AccountID <= 0 {
		return fmt.Errorf("override requires a selected account")
	}
	return nil
}

// OverrideAck is the server acknowledgment for a stored override.
type OverrideAck struct {
	Status     string `json:"status"`
	OverrideID int    `json:"override_id"`
}

// SubmitOverride calls POST /overrides. The request is validated locally
// first; the forecast itself is not touched here, callers re-fetch it to
// observe the override's effect.
func (c *Client) SubmitOverride(ctx context.Context, req OverrideRequest) (*OverrideAck, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out OverrideAck
	if err := c.post(ctx, "/overrides", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
