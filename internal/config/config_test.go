package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SLACK_SIGNING_SECRET", "shh")
	t.Setenv("SLACK_TOKEN", "xoxb-test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"PORT", "BANK_API_URL", "BANK_WEB_URL", "BANK_BACKEND", "LOG_LEVEL", "HTTP_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, &Config{
		SigningSecret: "shh",
		SlackToken:    "xoxb-test",
		Port:          "3000",
		BankAPIURL:    "https://hcb.hackclub.com/api/v3",
		BankWebURL:    "https://hcb.hackclub.com",
		Backend:       "api",
		LogLevel:      slog.LevelInfo,
	}, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("BANK_API_URL", "http://localhost:9000/api/v3")
	t.Setenv("BANK_BACKEND", "Scrape")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_TIMEOUT", "5s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:9000/api/v3", cfg.BankAPIURL)
	assert.Equal(t, "scrape", cfg.Backend)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("SLACK_SIGNING_SECRET", "")
	t.Setenv("SLACK_TOKEN", "xoxb-test")
	_, err := Load()
	assert.ErrorContains(t, err, "SLACK_SIGNING_SECRET")

	t.Setenv("SLACK_SIGNING_SECRET", "shh")
	t.Setenv("SLACK_TOKEN", "")
	_, err = Load()
	assert.ErrorContains(t, err, "SLACK_TOKEN")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"BANK_BACKEND", "ftp"},
		{"LOG_LEVEL", "loud"},
		{"HTTP_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
