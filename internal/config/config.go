package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	YouTube   YouTubeConfig
	Redis     RedisConfig
	Logging   LoggingConfig
	Server    ServerConfig
	Analytics AnalyticsConfig
}

type YouTubeConfig struct {
	APIKey string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type LoggingConfig struct {
	Level string
	File  string
}

type ServerConfig struct {
	Name    string
	Version string
}

// AnalyticsConfig carries the tunable constants of the analytics pipeline.
// The defaults mirror the values the tools were calibrated with; they are
// exposed here rather than hardcoded so operators can adjust them without a
// rebuild.
type AnalyticsConfig struct {
	ViralThresholdViewsPerHour float64
	LikeWeight                 float64
	CommentWeight              float64
	DefaultLookbackDays        int
	DefaultForecastDays        int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		YouTube: YouTubeConfig{
			APIKey: getEnv("YOUTUBE_API_KEY", ""),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Server: ServerConfig{
			Name:    getEnv("SERVER_NAME", "youtube-mcp"),
			Version: getEnv("SERVER_VERSION", "0.1.0"),
		},
		Analytics: AnalyticsConfig{
			ViralThresholdViewsPerHour: getEnvFloat("VIRAL_THRESHOLD_VIEWS_PER_HOUR", 10000),
			LikeWeight:                 getEnvFloat("ENGAGEMENT_LIKE_WEIGHT", 0.7),
			CommentWeight:              getEnvFloat("ENGAGEMENT_COMMENT_WEIGHT", 0.3),
			DefaultLookbackDays:        getEnvInt("ANALYTICS_LOOKBACK_DAYS", 14),
			DefaultForecastDays:        getEnvInt("ANALYTICS_FORECAST_DAYS", 7),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YOUTUBE_API_KEY is required")
	}
	if c.Analytics.DefaultLookbackDays <= 0 {
		return fmt.Errorf("ANALYTICS_LOOKBACK_DAYS must be positive")
	}
	if c.Analytics.DefaultForecastDays <= 0 {
		return fmt.Errorf("ANALYTICS_FORECAST_DAYS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
