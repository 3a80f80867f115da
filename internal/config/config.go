// Package config reads process configuration from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort    = "3000"
	DefaultAPIURL  = "https://hcb.hackclub.com/api/v3"
	DefaultWebURL  = "https://hcb.hackclub.com"
	DefaultBackend = "api"
)

type Config struct {
	SigningSecret string
	SlackToken    string
	Port          string
	BankAPIURL    string
	BankWebURL    string
	Backend       string // "api" or "scrape"
	LogLevel      slog.Level
	HTTPTimeout   time.Duration // Zero means no client timeout
}

// Load reads the configuration. Values already present in the environment
// take precedence over the .env file. A missing Slack secret is an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		SlackToken:    os.Getenv("SLACK_TOKEN"),
		Port:          getenv("PORT", DefaultPort),
		BankAPIURL:    getenv("BANK_API_URL", DefaultAPIURL),
		BankWebURL:    getenv("BANK_WEB_URL", DefaultWebURL),
		Backend:       strings.ToLower(getenv("BANK_BACKEND", DefaultBackend)),
	}

	if cfg.SigningSecret == "" {
		return nil, fmt.Errorf("SLACK_SIGNING_SECRET environment variable is required")
	}
	if cfg.SlackToken == "" {
		return nil, fmt.Errorf("SLACK_TOKEN environment variable is required")
	}

	switch cfg.Backend {
	case "api", "scrape":
	default:
		return nil, fmt.Errorf("BANK_BACKEND must be \"api\" or \"scrape\", got %q", cfg.Backend)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
