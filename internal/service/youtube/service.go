package youtube

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/archish9/youtube-mcp/internal/service/cache"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Service wraps the YouTube Data API with daily-quota accounting and an
// optional read-through cache for raw responses. All analytics consume live
// snapshots produced here; nothing computed is ever written back.
type Service struct {
	service    *youtube.Service
	cache      *cache.CacheService
	logger     *zap.Logger
	quotaUsed  int
	quotaMu    sync.Mutex
	quotaReset time.Time
}

const (
	dailyQuotaLimit = 10000
	searchQuotaCost = 100 // search.list cost
	listQuotaCost   = 1   // videos/channels/commentThreads/playlists cost

	quotaSafetyMargin = 500

	videoCacheTTL    = 15 * time.Minute
	channelCacheTTL  = 2 * time.Hour
	browseCacheTTL   = 30 * time.Minute
	fetchConcurrency = 5 // fan-out bound for multi-entity tool calls
)

func NewService(apiKey string, cacheSvc *cache.CacheService, logger *zap.Logger) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	ctx := context.Background()
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	ys := &Service{
		service:    svc,
		cache:      cacheSvc,
		logger:     logger,
		quotaUsed:  0,
		quotaReset: getNextQuotaReset(),
	}

	logger.Info("YouTube service initialized",
		zap.Time("quotaReset", ys.quotaReset))

	return ys, nil
}

// Quota resets at midnight Pacific, same as the Data API console counter.
func getNextQuotaReset() time.Time {
	pt, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		pt = time.FixedZone("PT", -8*60*60)
	}
	now := time.Now().In(pt)
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, pt)
}

func (ys *Service) checkQuota(cost int) error {
	ys.quotaMu.Lock()
	defer ys.quotaMu.Unlock()

	now := time.Now()
	if now.After(ys.quotaReset) {
		ys.quotaUsed = 0
		ys.quotaReset = getNextQuotaReset()
		ys.logger.Info("YouTube API quota auto-reset",
			zap.Time("nextReset", ys.quotaReset))
	}

	if ys.quotaUsed+cost > (dailyQuotaLimit - quotaSafetyMargin) {
		return &QuotaExceededError{
			Used:      ys.quotaUsed,
			Limit:     dailyQuotaLimit,
			Requested: cost,
			ResetTime: ys.quotaReset,
		}
	}

	return nil
}

func (ys *Service) consumeQuota(cost int) {
	ys.quotaMu.Lock()
	defer ys.quotaMu.Unlock()

	ys.quotaUsed += cost
	remaining := dailyQuotaLimit - ys.quotaUsed

	ys.logger.Debug("YouTube API quota consumed",
		zap.Int("cost", cost),
		zap.Int("used", ys.quotaUsed),
		zap.Int("remaining", remaining))

	if remaining < quotaSafetyMargin {
		ys.logger.Warn("YouTube API quota running low",
			zap.Int("remaining", remaining),
			zap.Time("resetTime", ys.quotaReset))
	}
}
