// Package analytics derives growth trends, viral-spike detection,
// performance scoring, and forecasts from single live metric snapshots.
//
// The Data API exposes no per-video history without owner access, so the
// pipeline first synthesizes a plausible trajectory anchored to the one
// observable data point and then runs trend math over it. The synthesis
// boundary is explicit: everything downstream of Synthesize works the same
// against real historical storage, should one ever exist.
package analytics

import (
	"go.uber.org/zap"

	"github.com/archish9/youtube-mcp/internal/config"
)

// Config holds the tunable constants of the pipeline. The values are
// deliberate carry-overs from the original calibration, not statistically
// derived.
type Config struct {
	ViralThresholdViewsPerHour float64
	LikeWeight                 float64
	CommentWeight              float64
	DefaultLookbackDays        int
	DefaultForecastDays        int
}

// DefaultConfig returns the calibration the tools ship with.
func DefaultConfig() Config {
	return Config{
		ViralThresholdViewsPerHour: 10000,
		LikeWeight:                 0.7,
		CommentWeight:              0.3,
		DefaultLookbackDays:        14,
		DefaultForecastDays:        7,
	}
}

// FromAppConfig maps the application configuration onto the engine config.
func FromAppConfig(ac config.AnalyticsConfig) Config {
	cfg := Config{
		ViralThresholdViewsPerHour: ac.ViralThresholdViewsPerHour,
		LikeWeight:                 ac.LikeWeight,
		CommentWeight:              ac.CommentWeight,
		DefaultLookbackDays:        ac.DefaultLookbackDays,
		DefaultForecastDays:        ac.DefaultForecastDays,
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ViralThresholdViewsPerHour <= 0 {
		c.ViralThresholdViewsPerHour = def.ViralThresholdViewsPerHour
	}
	if c.LikeWeight <= 0 {
		c.LikeWeight = def.LikeWeight
	}
	if c.CommentWeight <= 0 {
		c.CommentWeight = def.CommentWeight
	}
	if c.DefaultLookbackDays <= 0 {
		c.DefaultLookbackDays = def.DefaultLookbackDays
	}
	if c.DefaultForecastDays <= 0 {
		c.DefaultForecastDays = def.DefaultForecastDays
	}
	return c
}

// Engine runs all analytics computations. It holds no per-call state; every
// invocation builds and discards its own series and reports.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg.withDefaults(), logger: logger}
}
