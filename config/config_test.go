package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"GO_ENV", "CONFIG_FILE", "DATABASE_URL", "PORT", "JWT_SECRET", "CORS_ALLOWED_ORIGINS",
	"EVENT_TIMEZONE", "FEED_REFRESH_CRON", "REQUEST_TIMEOUT", "CALENDAR_NAME",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
	t.Setenv("GO_ENV", "test")
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultDBUrl, cfg.DBUrl)
	assert.Equal(t, "UTC", cfg.EventTimezone)
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,,")
	t.Setenv("EVENT_TIMEZONE", "Europe/Madrid")
	t.Setenv("FEED_REFRESH_CRON", "@every 1m")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "Europe/Madrid", cfg.EventTimezone)
	assert.Equal(t, "@every 1m", cfg.FeedCron)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}

func TestLoad_FileOverlay(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, strings.Join([]string{
		"port: \"7000\"",
		"environment: production",
		"event_timezone: America/New_York",
		"feed_refresh_cron: \"*/5 * * * *\"",
		"request_timeout: 10s",
		"calendar_name: DevFest",
		"cors_allowed_origins:",
		"  - https://app.example",
	}, "\n"))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port, "env wins over file")
	assert.Equal(t, "test", cfg.Environment, "file cannot change GO_ENV")
	assert.Equal(t, "America/New_York", cfg.EventTimezone)
	assert.Equal(t, "*/5 * * * *", cfg.FeedCron)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "DevFest", cfg.CalendarName)
	assert.Equal(t, []string{"https://app.example"}, cfg.AllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing config file", map[string]string{"CONFIG_FILE": "/nonexistent/config.yaml"}},
		{"bad timeout", map[string]string{"REQUEST_TIMEOUT": "soon"}},
		{"bad timezone", map[string]string{"EVENT_TIMEZONE": "Mars/Olympus"}},
		{"production without secret", map[string]string{"GO_ENV": "production"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeConfigFile(t, "port: [unclosed"))

	_, err := Load()
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewLogger_Handlers(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "production", "info").Info("hello", "k", "v")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), buf.String())

	buf.Reset()
	logger := newLogger(&buf, "development", "warn")
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
