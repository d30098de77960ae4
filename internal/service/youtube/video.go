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

// VideoFetchResult carries one item of a multi-video fetch. A failed item
// never aborts its siblings.
type VideoFetchResult struct {
	VideoID string
	Context *domain.VideoContext
	Err     error
}

// Video fetches full metadata for a single video.
func (ys *Service) Video(ctx context.Context, videoID string) (*domain.VideoInfo, error) {
	id := ExtractVideoID(videoID)
	if id == "" {
		return nil, apperrors.NewValidationError("video ID is required", "video_id", videoID)
	}

	cacheKey := "yt:video:" + id
	var cached domain.VideoInfo
	if hit, _ := ys.cache.Get(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	if err := ys.checkQuota(listQuotaCost); err != nil {
		return nil, err
	}

	call := ys.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).Id(id)
	resp, err := call.Context(ctx).Do()
	if err != nil {
		ys.logger.Error("Video fetch failed", zap.String("videoId", id), zap.Error(err))
		return nil, wrapAPIError("videos.list", err)
	}
	ys.consumeQuota(listQuotaCost)

	if len(resp.Items) == 0 {
		return nil, apperrors.NewNotFoundError("video", id)
	}

	item := resp.Items[0]
	publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	durationSeconds := util.ParseISODuration(item.ContentDetails.Duration)

	info := &domain.VideoInfo{
		VideoID:      id,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ChannelID:    item.Snippet.ChannelId,
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  publishedAt,
		Duration:     util.FormatSeconds(durationSeconds),
		DurationRaw:  item.ContentDetails.Duration,
		Tags:         item.Snippet.Tags,
		CategoryID:   item.Snippet.CategoryId,
		URL:          "https://youtube.com/watch?v=" + id,
	}
	if item.Statistics != nil {
		info.Views = item.Statistics.ViewCount
		info.Likes = item.Statistics.LikeCount
		info.Comments = item.Statistics.CommentCount
	}
	info.ViewsFormatted = util.FormatCount(info.Views)
	info.LikesFormatted = util.FormatCount(info.Likes)
	info.CommentsFormatted = util.FormatCount(info.Comments)
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
		info.Thumbnail = item.Snippet.Thumbnails.High.Url
	}

	_ = ys.cache.Set(ctx, cacheKey, info, videoCacheTTL)

	return info, nil
}

// VideoContext fetches the live metric snapshot the analytics pipeline is
// anchored to. The snapshot timestamp is the fetch instant.
func (ys *Service) VideoContext(ctx context.Context, videoID string) (*domain.VideoContext, error) {
	info, err := ys.Video(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return &domain.VideoContext{
		VideoID:         info.VideoID,
		Title:           info.Title,
		ChannelID:       info.ChannelID,
		ChannelTitle:    info.ChannelTitle,
		PublishedAt:     info.PublishedAt,
		DurationSeconds: util.ParseISODuration(info.DurationRaw),
		Current: domain.MetricSnapshot{
			Timestamp: time.Now(),
			Views:     info.Views,
			Likes:     info.Likes,
			Comments:  info.Comments,
		},
	}, nil
}

// VideoContexts fans out independent fetches for multiple videos and
// reports per-item results in input order.
func (ys *Service) VideoContexts(ctx context.Context, videoIDs []string) []VideoFetchResult {
	results := make([]VideoFetchResult, len(videoIDs))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(fetchConcurrency)
	for idx, videoID := range videoIDs {
		idx, videoID := idx, videoID
		p.Go(func() {
			vc, err := ys.VideoContext(ctx, videoID)
			mu.Lock()
			results[idx] = VideoFetchResult{VideoID: ExtractVideoID(videoID), Context: vc, Err: err}
			mu.Unlock()
		})
	}
	p.Wait()

	return results
}
