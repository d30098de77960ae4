package app

import (
	"context"
	"fmt"

	"github.com/archish9/youtube-mcp/internal/analytics"
	"github.com/archish9/youtube-mcp/internal/benchmark"
	"github.com/archish9/youtube-mcp/internal/config"
	"github.com/archish9/youtube-mcp/internal/mcpserver"
	"github.com/archish9/youtube-mcp/internal/report"
	"github.com/archish9/youtube-mcp/internal/service/cache"
	"github.com/archish9/youtube-mcp/internal/service/transcript"
	"github.com/archish9/youtube-mcp/internal/service/youtube"
	"go.uber.org/zap"
)

// Container bundles the assembled services behind the MCP tool surface.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Deps   *mcpserver.Deps

	closers []func()
}

// Close releases infrastructure resources in reverse build order.
func (c *Container) Close() {
	if c == nil {
		return
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles all services and returns a container holding the wired tool
// dependencies. All heavy-weight initialization (cache connections, API client
// construction) happens here so the tool handlers stay pure orchestration.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// A nil cache service is a valid no-op, so a disabled Redis block simply
	// skips memoization instead of requiring a separate code path.
	var cacheSvc *cache.CacheService
	if cfg.Redis.Enabled {
		cacheSvc, err = cache.NewCacheService(cache.CacheConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache service: %w", err)
		}
		closers = append(closers, func() {
			_ = cacheSvc.Close()
		})
	} else {
		logger.Info("Redis disabled, running without response cache")
	}

	youtubeSvc, err := youtube.NewService(cfg.YouTube.APIKey, cacheSvc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	transcriptSvc := transcript.NewService(logger)

	analyticsEngine := analytics.NewEngine(analytics.FromAppConfig(cfg.Analytics), logger)
	benchmarkEngine := benchmark.NewEngine(logger)
	reportGen := report.NewGenerator(youtubeSvc, youtubeSvc, analyticsEngine, logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		Deps: &mcpserver.Deps{
			YouTube:    youtubeSvc,
			Transcript: transcriptSvc,
			Analytics:  analyticsEngine,
			Benchmark:  benchmarkEngine,
			Reports:    reportGen,
			Logger:     logger,
		},
		closers: closers,
	}, nil
}
