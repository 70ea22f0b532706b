package fcapi

import (
	"context"
	"net/url"
	"strconv"
)

type createAccountRequest struct {
	UserID         int     `json:"user_id"`
	Name           string  `json:"name"`
	CurrentBalance float64 `json:"current_balance"`
}

// ListAccounts calls GET /accounts filtered to one user.
func (c *Client) ListAccounts(ctx context.Context, userID int) ([]Account, error) {
	query := url.Values{}
	query.Set("user_id", strconv.Itoa(userID))

	var out []Account
	if err := c.get(ctx, "/accounts", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAccount calls POST /accounts.
func (c *Client) CreateAccount(
	ctx context.Context,
	userID int,
	name string,
	currentBalance float64,
) (*Account, error) {
	var out Account
	body := createAccountRequest{
		UserID:         userID,
		Name:           name,
		CurrentBalance: currentBalance,
	}
	if err := c.post(ctx, "/accounts", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
