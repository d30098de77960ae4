package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.YouTube.APIKey)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "youtube-mcp", cfg.Server.Name)
	assert.Equal(t, 10000.0, cfg.Analytics.ViralThresholdViewsPerHour)
	assert.Equal(t, 14, cfg.Analytics.DefaultLookbackDays)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "YOUTUBE_API_KEY")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("VIRAL_THRESHOLD_VIEWS_PER_HOUR", "5000")
	t.Setenv("ANALYTICS_LOOKBACK_DAYS", "30")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, 5000.0, cfg.Analytics.ViralThresholdViewsPerHour)
	assert.Equal(t, 30, cfg.Analytics.DefaultLookbackDays)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("REDIS_PORT", "not-a-number")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestValidateRejectsNonPositiveWindows(t *testing.T) {
	cfg := &Config{}
	cfg.YouTube.APIKey = "key"
	cfg.Analytics.DefaultLookbackDays = 0
	cfg.Analytics.DefaultForecastDays = 7

	require.Error(t, cfg.Validate())
}
