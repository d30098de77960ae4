package youtube

import (
	"context"
	"sync"
	"time"

	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/archish9/youtube-mcp/internal/util"
	apperrors "github.com/archish9/youtube-mcp/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// ChannelFetchResult carries one item of a multi-channel fetch.
type ChannelFetchResult struct {
	ChannelID string
	Snapshot  *domain.ChannelSnapshot
	Err       error
}

// Channel fetches full metadata for a single channel. Accepts a channel ID,
// a /channel/ URL, or an @handle.
func (ys *Service) Channel(ctx context.Context, channelID string) (*domain.ChannelInfo, error) {
	id, err := ys.resolveChannelID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	cacheKey := "yt:channel:" + id
	var cached domain.ChannelInfo
	if hit, _ := ys.cache.Get(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	if err := ys.checkQuota(listQuotaCost); err != nil {
		return nil, err
	}

	call := ys.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).Id(id)
	resp, err := call.Context(ctx).Do()
	if err != nil {
		ys.logger.Error("Channel fetch failed", zap.String("channelId", id), zap.Error(err))
		return nil, wrapAPIError("channels.list", err)
	}
	ys.consumeQuota(listQuotaCost)

	if len(resp.Items) == 0 {
		return nil, apperrors.NewNotFoundError("channel", id)
	}

	item := resp.Items[0]
	publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)

	info := &domain.ChannelInfo{
		ChannelID:   id,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		CustomURL:   item.Snippet.CustomUrl,
		PublishedAt: publishedAt,
		Country:     item.Snippet.Country,
		URL:         "https://youtube.com/channel/" + id,
	}
	if item.Statistics != nil {
		info.Subscribers = item.Statistics.SubscriberCount
		info.TotalViews = item.Statistics.ViewCount
		info.VideoCount = item.Statistics.VideoCount
	}
	info.SubscribersFormatted = util.FormatCount(info.Subscribers)
	info.TotalViewsFormatted = util.FormatCount(info.TotalViews)
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
		info.Thumbnail = item.Snippet.Thumbnails.High.Url
	}
	if info.Country == "" {
		info.Country = "Unknown"
	}

	_ = ys.cache.Set(ctx, cacheKey, info, channelCacheTTL)

	return info, nil
}

// ChannelSnapshot fetches the point-in-time statistics used for
// benchmarking.
func (ys *Service) ChannelSnapshot(ctx context.Context, channelID string) (*domain.ChannelSnapshot, error) {
	info, err := ys.Channel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	return &domain.ChannelSnapshot{
		ChannelID:   info.ChannelID,
		Title:       info.Title,
		Subscribers: info.Subscribers,
		TotalViews:  info.TotalViews,
		VideoCount:  info.VideoCount,
		Country:     info.Country,
		PublishedAt: info.PublishedAt,
	}, nil
}

// ChannelSnapshots fans out independent fetches for multiple channels and
// reports per-item results in input order. One missing channel does not
// abort the rest; callers surface it as an itemized omission.
func (ys *Service) ChannelSnapshots(ctx context.Context, channelIDs []string) []ChannelFetchResult {
	results := make([]ChannelFetchResult, len(channelIDs))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(fetchConcurrency)
	for idx, channelID := range channelIDs {
		idx, channelID := idx, channelID
		p.Go(func() {
			snap, err := ys.ChannelSnapshot(ctx, channelID)
			mu.Lock()
			results[idx] = ChannelFetchResult{ChannelID: channelID, Snapshot: snap, Err: err}
			mu.Unlock()
		})
	}
	p.Wait()

	return results
}

// resolveChannelID turns a channel argument into a raw channel ID,
// resolving @handles through a search call when needed.
func (ys *Service) resolveChannelID(ctx context.Context, channelID string) (string, error) {
	ref := parseChannelRef(channelID)
	if ref.ID != "" {
		return ref.ID, nil
	}
	if ref.Handle == "" {
		return "", apperrors.NewValidationError("channel ID is required", "channel_id", channelID)
	}

	if err := ys.checkQuota(searchQuotaCost); err != nil {
		return "", err
	}

	call := ys.service.Search.List([]string{"snippet"}).
		Q(ref.Handle).
		Type("channel").
		MaxResults(1)
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return "", wrapAPIError("search.list", err)
	}
	ys.consumeQuota(searchQuotaCost)

	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return "", apperrors.NewNotFoundError("channel", "@"+ref.Handle)
	}

	return resp.Items[0].Snippet.ChannelId, nil
}
