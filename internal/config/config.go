// Package config loads runway configuration from config.toml, an optional
// .env file, and environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all runway configuration.
type Config struct {
	API      APIConfig      `toml:"api"`
	Forecast ForecastConfig `toml:"forecast"`
}

// APIConfig holds forecasting API settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
}

// ForecastConfig holds forecast request parameters.
type ForecastConfig struct {
	Months int     `toml:"months"`
	Buffer float64 `toml:"buffer"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
		},
		Forecast: ForecastConfig{
			Months: 3,
			Buffer: 50,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "runway")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "runway")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file if present and applies .env plus environment
// overrides. A missing config file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path := Path()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Default(), fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.Forecast.Months <= 0 {
		cfg.Forecast.Months = Default().Forecast.Months
	}
	if cfg.Forecast.Buffer < 0 {
		cfg.Forecast.Buffer = Default().Forecast.Buffer
	}
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		cfg.API.BaseURL = Default().API.BaseURL
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("RUNWAY_API_URL")); v != "" {
		cfg.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("RUNWAY_MONTHS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Forecast.Months = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("RUNWAY_BUFFER")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Forecast.Buffer = f
		}
	}
}
