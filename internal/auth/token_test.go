package auth

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestLoadTokenUsesEnvVarFirst(t *testing.T) {
	t.Setenv("RUNWAY_TOKEN", "  env-token  ")

	origGet := keyringGet
	defer func() { keyringGet = origGet }()

	keyringCalled := false
	keyringGet = func(service, user string) (string, error) {
		keyringCalled = true
		return "keyring-token", nil
	}

	got, err := LoadToken()
	if err != nil {
		t.Fatalf("LoadToken() unexpected error: %v", err)
	}
	if got != "env-token" {
		t.Fatalf("LoadToken() = %q, want %q", got, "env-token")
	}
	if keyringCalled {
		t.Fatal("LoadToken() called keyringGet even though RUNWAY_TOKEN was set")
	}
}

func TestLoadTokenFallsBackToKeyring(t *testing.T) {
	t.Setenv("RUNWAY_TOKEN", "")
	t.Setenv("RUNWAY_KEYCHAIN_SERVICE", "svc")
	t.Setenv("RUNWAY_KEYCHAIN_ACCOUNT", "acct")

	origGet := keyringGet
	defer func() { keyringGet = origGet }()

	var gotService, gotUser string
	keyringGet = func(service, user string) (string, error) {
		gotService = service
		gotUser = user
		return "  keyring-token  ", nil
	}

	got, err := LoadToken()
	if err != nil {
		t.Fatalf("LoadToken() unexpected error: %v", err)
	}
	if got != "keyring-token" {
		t.Fatalf("LoadToken() = %q, want %q", got, "keyring-token")
	}
	if gotService != "svc" || gotUser != "acct" {
		t.Fatalf("keyring lookup = %q/%q, want svc/acct", gotService, gotUser)
	}
}

func TestLoadTokenMissingIsNotAnError(t *testing.T) {
	t.Setenv("RUNWAY_TOKEN", "")

	origGet := keyringGet
	defer func() { keyringGet = origGet }()

	keyringGet = func(service, user string) (string, error) {
		return "", keyring.ErrNotFound
	}

	got, err := LoadToken()
	if err != nil {
		t.Fatalf("LoadToken() unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("LoadToken() = %q, want empty", got)
	}
}

func TestSaveTokenRejectsEmpty(t *testing.T) {
	if err := SaveToken("   "); err == nil {
		t.Fatal("SaveToken() error = nil, want non-nil")
	}
}

func TestSaveTokenStoresTrimmedValue(t *testing.T) {
	t.Setenv("RUNWAY_KEYCHAIN_SERVICE", "")
	t.Setenv("RUNWAY_KEYCHAIN_ACCOUNT", "")

	origSet := keyringSet
	defer func() { keyringSet = origSet }()

	var gotService, gotUser, gotSecret string
	keyringSet = func(service, user, secret string) error {
		gotService = service
		gotUser = user
		gotSecret = secret
		return nil
	}

	if err := SaveToken("  tok-1  "); err != nil {
		t.Fatalf("SaveToken() unexpected error: %v", err)
	}
	if gotService != "runway" || gotUser != "api_token" {
		t.Fatalf("keyring target = %q/%q, want runway/api_token", gotService, gotUser)
	}
	if gotSecret != "tok-1" {
		t.Fatalf("stored secret = %q, want %q", gotSecret, "tok-1")
	}
}

func TestRemoveTokenIgnoresMissingItem(t *testing.T) {
	origDelete := keyringDelete
	defer func() { keyringDelete = origDelete }()

	keyringDelete = func(service, user string) error {
		return keyring.ErrNotFound
	}

	if err := RemoveToken(); err != nil {
		t.Fatalf("RemoveToken() unexpected error: %v", err)
	}
}

func TestRemoveTokenPropagatesFailures(t *testing.T) {
	origDelete := keyringDelete
	defer func() { keyringDelete = origDelete }()

	keyringDelete = func(service, user string) error {
		return errors.New("keyring locked")
	}

	if err := RemoveToken(); err == nil {
		t.Fatal("RemoveToken() error = nil, want non-nil")
	}
}
