package fcapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(body string, status int, seen *[]*http.Request, opts ...Option) *Client {
	client := New("https://example.test", opts...)
	client.httpClient = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if seen != nil {
				*seen = append(*seen, req)
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
			}, nil
		}),
	}
	return client
}

func TestListUsersRequestShape(t *testing.T) {
	var seen []*http.Request
	client := newTestClient(`[{"id":1,"email":"user@example.com"}]`, http.StatusOK, &seen)

	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers() unexpected error: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("requests = %d, want 1", len(seen))
	}
	if seen[0].Method != http.MethodGet || seen[0].URL.Path != "/users" {
		t.Fatalf("request = %s %s, want GET /users", seen[0].Method, seen[0].URL.Path)
	}
	if len(users) != 1 || users[0].Email != "user@example.com" {
		t.Fatalf("users = %+v, want one user@example.com", users)
	}
}

func TestListAccountsFiltersByUser(t *testing.T) {
	var seen []*http.Request
	client := newTestClient(`[]`, http.StatusOK, &seen)

	if _, err := client.ListAccounts(context.Background(), 42); err != nil {
		t.Fatalf("ListAccounts() unexpected error: %v", err)
	}
	if len(seen) != 1 {
		t.Fatal("no request captured")
	}
	if seen[0].URL.Path != "/accounts" {
		t.Fatalf("path = %q, want %q", seen[0].URL.Path, "/accounts")
	}
	if got := seen[0].URL.Query().Get("user_id"); got != "42" {
		t.Fatalf("user_id = %q, want %q", got, "42")
	}
}

func TestGetForecastQueryParams(t *testing.T) {
	tests := []struct {
		name       string
		months     int
		buffer     float64
		wantMonths string
		wantBuffer string
	}{
		{name: "explicit values", months: 6, buffer: 125.5, wantMonths: "6", wantBuffer: "125.5"},
		{name: "zero months falls back", months: 0, buffer: 0, wantMonths: "3", wantBuffer: "0"},
		{name: "negative buffer falls back", months: 3, buffer: -1, wantMonths: "3", wantBuffer: "50"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen []*http.Request
			client := newTestClient(`{"balances":{},"alerts":[]}`, http.StatusOK, &seen)

			if _, err := client.GetForecast(context.Background(), 7, tc.months, tc.buffer); err != nil {
				t.Fatalf("GetForecast() unexpected error: %v", err)
			}
			if len(seen) != 1 {
				t.Fatal("no request captured")
			}
			query := seen[0].URL.Query()
			if got := query.Get("account_id"); got != "7" {
				t.Fatalf("account_id = %q, want %q", got, "7")
			}
			if got := query.Get("months"); got != tc.wantMonths {
				t.Fatalf("months = %q, want %q", got, tc.wantMonths)
			}
			if got := query.Get("buffer"); got != tc.wantBuffer {
				t.Fatalf("buffer = %q, want %q", got, tc.wantBuffer)
			}
		})
	}
}

func TestBearerTokenHeader(t *testing.T) {
	var seen []*http.Request
	client := newTestClient(`[]`, http.StatusOK, &seen, WithToken("secret-token"))

	if _, err := client.ListUsers(context.Background()); err != nil {
		t.Fatalf("ListUsers() unexpected error: %v", err)
	}
	if got := seen[0].Header.Get("Authorization"); got != "Bearer secret-token" {
		t.Fatalf("Authorization = %q, want %q", got, "Bearer secret-token")
	}
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var seen []*http.Request
	client := newTestClient(`[]`, http.StatusOK, &seen)

	if _, err := client.ListUsers(context.Background()); err != nil {
		t.Fatalf("ListUsers() unexpected error: %v", err)
	}
	if got := seen[0].Header.Get("Authorization"); got != "" {
		t.Fatalf("Authorization = %q, want empty", got)
	}
}

func TestNonSuccessStatusFails(t *testing.T) {
	client := newTestClient(`{"detail":"boom"}`, http.StatusInternalServerError, nil)

	if _, err := client.GetForecast(context.Background(), 1, 3, 50); err == nil {
		t.Fatal("GetForecast() error = nil, want non-nil")
	}
}

func TestUndecodableBodyFails(t *testing.T) {
	client := newTestClient(`not json`, http.StatusOK, nil)

	if _, err := client.ListUsers(context.Background()); err == nil {
		t.Fatal("ListUsers() error = nil, want non-nil")
	}
}

func TestLoginSendsFormAndReturnsToken(t *testing.T) {
	var seenBody string
	var seenContentType string
	client := New("https://example.test")
	client.httpClient = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			raw, _ := io.ReadAll(req.Body)
			seenBody = string(raw)
			seenContentType = req.Header.Get("Content-Type")
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"access_token":"tok-1","token_type":"bearer"}`)),
				Header:     make(http.Header),
			}, nil
		}),
	}

	token, err := client.Login(context.Background(), "user@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("token = %q, want %q", token, "tok-1")
	}
	if seenContentType != "application/x-www-form-urlencoded" {
		t.Fatalf("Content-Type = %q, want form encoding", seenContentType)
	}
	if !strings.Contains(seenBody, "username=user%40example.com") {
		t.Fatalf("body = %q, want username field", seenBody)
	}
}
