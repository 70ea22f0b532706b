package fcapi

import "context"

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ListUsers calls GET /users.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.get(ctx, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser calls POST /users. The server rejects duplicate emails.
func (c *Client) CreateUser(ctx context.Context, email, password string) (*User, error) {
	var out User
	body := createUserRequest{Email: email, Password: password}
	if err := c.post(ctx, "/users", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
