package fcapi

import (
	"context"
	"errors"
	"net/url"
)

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. The endpoint takes a
// form-encoded body with the email in the username field.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out loginResponse
	if err := c.postForm(ctx, "/login", form, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", errors.New("login response missing access token")
	}
	return out.AccessToken, nil
}
