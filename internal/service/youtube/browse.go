package youtube

import (
	"context"
	"fmt"
	"time"

	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/archish9/youtube-mcp/internal/util"
	apperrors "github.com/archish9/youtube-mcp/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/youtube/v3"
)

func searchItemToResult(item *youtube.SearchResult) domain.SearchResult {
	publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	r := domain.SearchResult{
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ChannelID:    item.Snippet.ChannelId,
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  publishedAt,
	}
	if item.Id != nil {
		r.VideoID = item.Id.VideoId
		r.URL = "https://youtube.com/watch?v=" + item.Id.VideoId
	}
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
		r.Thumbnail = item.Snippet.Thumbnails.High.Url
	}
	return r
}

// Search runs a keyword video search.
func (ys *Service) Search(ctx context.Context, query string, maxResults int64, order string) ([]domain.SearchResult, error) {
	if query == "" {
		return nil, apperrors.NewValidationError("query is required", "query", query)
	}
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 10
	}
	if order == "" {
		order = "relevance"
	}

	if err := ys.checkQuota(searchQuotaCost); err != nil {
		return nil, err
	}

	call := ys.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Order(order)
	resp, err := call.Context(ctx).Do()
	if err != nil {
		ys.logger.Error("Search failed", zap.String("query", query), zap.Error(err))
		return nil, wrapAPIError("search.list", err)
	}
	ys.consumeQuota(searchQuotaCost)

	results := make([]domain.SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, searchItemToResult(item))
	}
	return results, nil
}

// ChannelVideos lists a channel's most recent uploads.
func (ys *Service) ChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]domain.SearchResult, error) {
	id, err := ys.resolveChannelID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 10
	}

	if err := ys.checkQuota(searchQuotaCost); err != nil {
		return nil, err
	}

	call := ys.service.Search.List([]string{"snippet"}).
		ChannelId(id).
		Type("video").
		Order("date").
		MaxResults(maxResults)
	resp, err := call.Context(ctx).Do()
	if err != nil {
		ys.logger.Error("Channel videos fetch failed", zap.String("channelId", id), zap.Error(err))
		return nil, wrapAPIError("search.list", err)
	}
	ys.consumeQuota(searchQuotaCost)

	results := make([]domain.SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, searchItemToResult(item))
	}
	return results, nil
}

// RecentVideos fetches full statistics for a channel's recent uploads in one
// videos.list batch. Used by channel report generation.
func (ys *Service) RecentVideos(ctx context.Context, channelID string, maxResults int64) ([]domain.VideoInfo, error) {
	recent, err := ys.ChannelVideos(ctx, channelID, maxResults)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(recent))
	for _, r := range recent {
		if r.VideoID != "" {
			ids = append(ids, r.VideoID)
		}
	}

	if err := ys.checkQuota(listQuotaCost); err != nil {
		return nil, err
	}

	call := ys.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).Id(ids...)
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError("videos.list", err)
	}
	ys.consumeQuota(listQuotaCost)

	videos := make([]domain.VideoInfo, 0, len(resp.Items))
	for _, item := range resp.Items {
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		durationSeconds := util.ParseISODuration(item.ContentDetails.Duration)
		info := domain.VideoInfo{
			VideoID:      item.Id,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelID:    item.Snippet.ChannelId,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  publishedAt,
			Duration:     util.FormatSeconds(durationSeconds),
			DurationRaw:  item.ContentDetails.Duration,
			CategoryID:   item.Snippet.CategoryId,
			URL:          "https://youtube.com/watch?v=" + item.Id,
		}
		if item.Statistics != nil {
			info.Views = item.Statistics.ViewCount
			info.Likes = item.Statistics.LikeCount
			info.Comments = item.Statistics.CommentCount
		}
		info.ViewsFormatted = util.FormatCount(info.Views)
		info.LikesFormatted = util.FormatCount(info.Likes)
		info.CommentsFormatted = util.FormatCount(info.Comments)
		videos = append(videos, info)
	}
	return videos, nil
}

// Trending lists the most popular videos for a region.
func (ys *Service) Trending(ctx context.Context, regionCode, categoryID string, maxResults int64) ([]domain.TrendingVideo, error) {
	if regionCode == "" {
		regionCode = "US"
	}
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 10
	}

	cacheKey := fmt.Sprintf("yt:trending:%s:%s:%d", regionCode, categoryID, maxResults)
	var cached []domain.TrendingVideo
	if hit, _ := ys.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	if err := ys.checkQuota(listQuotaCost); err != nil {
		return nil, err
	}

	call := ys.service.Videos.List([]string{"snippet", "statistics"}).
		Chart("mostPopular").
		RegionCode(regionCode).
		MaxResults(maxResults)
	if categoryID != "" && categoryID != "0" {
		call = call.VideoCategoryId(categoryID)
	}
	resp, err := call.Context(ctx).Do()
	if err != nil {
		ys.logger.Error("Trending fetch failed", zap.String("region", regionCode), zap.Error(err))
		return nil, wrapAPIError("videos.list", err)
	}
	ys.consumeQuota(listQuotaCost)

	videos := make([]domain.TrendingVideo, 0, len(resp.Items))
	for _, item := range resp.Items {
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		tv := domain.TrendingVideo{
			SearchResult: domain.SearchResult{
				VideoID:      item.Id,
				Title:        item.Snippet.Title,
				Description:  item.Snippet.Description,
				ChannelID:    item.Snippet.ChannelId,
				ChannelTitle: item.Snippet.ChannelTitle,
				PublishedAt:  publishedAt,
				URL:          "https://youtube.com/watch?v=" + item.Id,
			},
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			tv.Thumbnail = item.Snippet.Thumbnails.High.Url
		}
		if item.Statistics != nil {
			tv.Views = item.Statistics.ViewCount
			tv.Likes = item.Statistics.LikeCount
		}
		tv.ViewsFormatted = util.FormatCount(tv.Views)
		videos = append(videos, tv)
	}

	_ = ys.cache.Set(ctx, cacheKey, videos, browseCacheTTL)

	return videos, nil
}

// Playlist fetches playlist metadata plus up to maxResults of its items.
func (ys *Service) Playlist(ctx context.Context, playlistID string, maxResults int64) (*domain.PlaylistInfo, error) {
	if playlistID == "" {
		return nil, apperrors.NewValidationError("playlist ID is required", "playlist_id", playlistID)
	}
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 20
	}

	if err := ys.checkQuota(2 * listQuotaCost); err != nil {
		return nil, err
	}

	plResp, err := ys.service.Playlists.List([]string{"snippet", "contentDetails"}).
		Id(playlistID).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError("playlists.list", err)
	}
	ys.consumeQuota(listQuotaCost)

	if len(plResp.Items) == 0 {
		return nil, apperrors.NewNotFoundError("playlist", playlistID)
	}
	pl := plResp.Items[0]

	itemsResp, err := ys.service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError("playlistItems.list", err)
	}
	ys.consumeQuota(listQuotaCost)

	info := &domain.PlaylistInfo{
		PlaylistID:   playlistID,
		Title:        pl.Snippet.Title,
		Description:  pl.Snippet.Description,
		ChannelID:    pl.Snippet.ChannelId,
		ChannelTitle: pl.Snippet.ChannelTitle,
	}
	if pl.ContentDetails != nil {
		info.TotalVideos = pl.ContentDetails.ItemCount
	}

	for _, item := range itemsResp.Items {
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		pi := domain.PlaylistItem{
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  publishedAt,
			Position:     item.Snippet.Position,
		}
		if item.Snippet.ResourceId != nil {
			pi.VideoID = item.Snippet.ResourceId.VideoId
			pi.URL = "https://youtube.com/watch?v=" + pi.VideoID
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			pi.Thumbnail = item.Snippet.Thumbnails.High.Url
		}
		info.Videos = append(info.Videos, pi)
	}
	info.VideosRetrieved = len(info.Videos)

	return info, nil
}

// Comments fetches top-level comment threads for a video.
func (ys *Service) Comments(ctx context.Context, videoID string, maxResults int64, order string) ([]domain.Comment, error) {
	id := ExtractVideoID(videoID)
	if id == "" {
		return nil, apperrors.NewValidationError("video ID is required", "video_id", videoID)
	}
	if maxResults <= 0 || maxResults > 100 {
		maxResults = 20
	}
	if order == "" {
		order = "relevance"
	}

	if err := ys.checkQuota(listQuotaCost); err != nil {
		return nil, err
	}

	call := ys.service.CommentThreads.List([]string{"snippet"}).
		VideoId(id).
		MaxResults(maxResults).
		Order(order).
		TextFormat("plainText")
	resp, err := call.Context(ctx).Do()
	if err != nil {
		ys.logger.Error("Comments fetch failed", zap.String("videoId", id), zap.Error(err))
		return nil, wrapAPIError("commentThreads.list", err)
	}
	ys.consumeQuota(listQuotaCost)

	comments := make([]domain.Comment, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		cs := item.Snippet.TopLevelComment.Snippet
		publishedAt, _ := time.Parse(time.RFC3339, cs.PublishedAt)
		comments = append(comments, domain.Comment{
			Author:      cs.AuthorDisplayName,
			Text:        cs.TextDisplay,
			Likes:       uint64(cs.LikeCount),
			PublishedAt: publishedAt,
			ReplyCount:  item.Snippet.TotalReplyCount,
		})
	}
	return comments, nil
}
