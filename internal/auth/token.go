// Package auth stores the forecasting API bearer token.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	defaultSecretService = "runway"
	defaultSecretUser    = "api_token"
)

var (
	keyringGet    = keyring.Get
	keyringSet    = keyring.Set
	keyringDelete = keyring.Delete
)

// LoadToken loads the API bearer token.
//
// Order of precedence:
// 1) RUNWAY_TOKEN environment variable.
// 2) System credential store item referenced by service/account.
//
// A token that is simply not stored anywhere is not an error; the API
// accepts unauthenticated requests. The empty string means "no token".
func LoadToken() (string, error) {
	if token := strings.TrimSpace(os.Getenv("RUNWAY_TOKEN")); token != "" {
		return token, nil
	}

	token, err := loadFromKeyring()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	return token, nil
}

// SaveToken stores the token in the system credential store.
func SaveToken(token string) error {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return errors.New("api token cannot be empty")
	}

	service := envOrDefault("RUNWAY_KEYCHAIN_SERVICE", defaultSecretService)
	account := envOrDefault("RUNWAY_KEYCHAIN_ACCOUNT", defaultSecretUser)

	if err := keyringSet(service, account, trimmed); err != nil {
		return fmt.Errorf(
			"failed to store keyring item service=%q account=%q: %w",
			service,
			account,
			err,
		)
	}

	return nil
}

// RemoveToken deletes the stored token. Removing a token that was never
// stored succeeds.
func RemoveToken() error {
	service := envOrDefault("RUNWAY_KEYCHAIN_SERVICE", defaultSecretService)
	account := envOrDefault("RUNWAY_KEYCHAIN_ACCOUNT", defaultSecretUser)

	if err := keyringDelete(service, account); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf(
			"failed to delete keyring item service=%q account=%q: %w",
			service,
			account,
			err,
		)
	}

	return nil
}

func loadFromKeyring() (string, error) {
	service := envOrDefault("RUNWAY_KEYCHAIN_SERVICE", defaultSecretService)
	account := envOrDefault("RUNWAY_KEYCHAIN_ACCOUNT", defaultSecretUser)

	secret, err := keyringGet(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf(
			"failed to read keyring item service=%q account=%q: %w",
			service,
			account,
			err,
		)
	}

	return strings.TrimSpace(secret), nil
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
