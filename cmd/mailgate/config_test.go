package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfigFrom(map[string]string{})
		require.NoError(t, err)
		require.Equal(t, ":8080", cfg.HTTPAddr)
		require.Equal(t, time.Minute, cfg.SettingsCacheTTL)
		require.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
		require.Equal(t, slog.LevelInfo, cfg.Log.Level)
		require.True(t, cfg.Database.Migrate)
		require.False(t, cfg.Database.Enabled())
		require.False(t, cfg.Redis.Enabled())
		require.Empty(t, cfg.APIKey)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfigFrom(map[string]string{
			"INTERNAL_API_KEY":    "secret",
			"SYSTEM_SENDER_EMAIL": "noreply@example.com",
			"SYSTEM_SENDER_NAME":  "Acme",
			"DATABASE_URL":        "postgres://localhost/mail",
			"REDIS_URL":           "redis://localhost:6379/0",
			"LOG_LEVEL":           "debug",
			"SETTINGS_CACHE_TTL":  "5s",
			"HTTP_ADDR":           ":9000",
		})
		require.NoError(t, err)
		require.Equal(t, "secret", cfg.APIKey)
		require.Equal(t, "noreply@example.com", cfg.SenderEmail)
		require.Equal(t, "Acme", cfg.SenderName)
		require.True(t, cfg.Database.Enabled())
		require.True(t, cfg.Redis.Enabled())
		require.Equal(t, slog.LevelDebug, cfg.Log.Level)
		require.Equal(t, 5*time.Second, cfg.SettingsCacheTTL)
		require.Equal(t, ":9000", cfg.HTTPAddr)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfigFrom(map[string]string{"SETTINGS_CACHE_TTL": "soon"})
		require.Error(t, err)
	})
}
