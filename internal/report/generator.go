// Package report assembles the human-facing performance reports that bundle
// fetch, scoring, and summary math into one document per entity.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/archish9/youtube-mcp/internal/analytics"
	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/archish9/youtube-mcp/internal/util"
	"go.uber.org/zap"
)

// VideoSource is the slice of the YouTube service video reports need.
type VideoSource interface {
	Video(ctx context.Context, videoID string) (*domain.VideoInfo, error)
}

// ChannelSource is the slice of the YouTube service channel reports need.
type ChannelSource interface {
	Channel(ctx context.Context, channelID string) (*domain.ChannelInfo, error)
	RecentVideos(ctx context.Context, channelID string, maxResults int64) ([]domain.VideoInfo, error)
}

type Generator struct {
	videos    VideoSource
	channels  ChannelSource
	analytics *analytics.Engine
	logger    *zap.Logger
}

func NewGenerator(videos VideoSource, channels ChannelSource, engine *analytics.Engine, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		videos:    videos,
		channels:  channels,
		analytics: engine,
		logger:    logger,
	}
}

type VideoReport struct {
	GeneratedAt time.Time                `json:"generated_at"`
	Video       *domain.VideoInfo        `json:"video"`
	Performance domain.PerformanceReport `json:"performance"`
}

// GenerateVideoReport fetches a video and bundles its metrics with the
// performance score and analysis.
func (g *Generator) GenerateVideoReport(ctx context.Context, videoID string) (*VideoReport, error) {
	info, err := g.videos.Video(ctx, videoID)
	if err != nil {
		return nil, err
	}

	perf := g.analytics.ScorePerformance(domain.MetricSnapshot{
		Timestamp: time.Now(),
		Views:     info.Views,
		Likes:     info.Likes,
		Comments:  info.Comments,
	})

	return &VideoReport{
		GeneratedAt: time.Now(),
		Video:       info,
		Performance: perf,
	}, nil
}

type PeriodSummary struct {
	VideosPublished     int     `json:"videos_published"`
	TotalViews          uint64  `json:"total_views"`
	TotalViewsFormatted string  `json:"total_views_formatted"`
	TotalLikes          uint64  `json:"total_likes"`
	TotalLikesFormatted string  `json:"total_likes_formatted"`
	AvgViewsPerVideo    float64 `json:"avg_views_per_video"`
	AvgViewsFormatted   string  `json:"avg_views_formatted"`
	AvgLikeRatePct      float64 `json:"avg_like_rate_pct"`
}

type TopVideo struct {
	VideoID        string  `json:"video_id"`
	Title          string  `json:"title"`
	Views          uint64  `json:"views"`
	ViewsFormatted string  `json:"views_formatted"`
	LikeRatePct    float64 `json:"like_rate_pct"`
}

type TopPerformers struct {
	ByViews      []TopVideo `json:"by_views"`
	ByEngagement []TopVideo `json:"by_engagement"`
}

type ChannelReport struct {
	GeneratedAt   time.Time           `json:"generated_at"`
	PeriodDays    int                 `json:"period_days"`
	Channel       *domain.ChannelInfo `json:"channel"`
	PeriodSummary PeriodSummary       `json:"period_summary"`
	TopPerformers TopPerformers       `json:"top_performers"`
	Videos        []domain.VideoInfo  `json:"videos,omitempty"`
}

const (
	recentUploadsFetched = 25
	topPerformerCount    = 3
)

// GenerateChannelReport summarizes a channel's uploads over the trailing
// period: totals, averages, and top performers by views and by like rate.
func (g *Generator) GenerateChannelReport(ctx context.Context, channelID string, periodDays int, includeVideos bool) (*ChannelReport, error) {
	if periodDays <= 0 {
		periodDays = 7
	}

	channel, err := g.channels.Channel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	recent, err := g.channels.RecentVideos(ctx, channel.ChannelID, recentUploadsFetched)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -periodDays)
	var inPeriod []domain.VideoInfo
	for _, v := range recent {
		if v.PublishedAt.After(cutoff) {
			inPeriod = append(inPeriod, v)
		}
	}

	report := &ChannelReport{
		GeneratedAt:   time.Now(),
		PeriodDays:    periodDays,
		Channel:       channel,
		PeriodSummary: summarize(inPeriod),
		TopPerformers: topPerformers(inPeriod),
	}
	if includeVideos {
		report.Videos = inPeriod
	}

	g.logger.Debug("Channel report generated",
		zap.String("channelId", channel.ChannelID),
		zap.Int("periodDays", periodDays),
		zap.Int("videosInPeriod", len(inPeriod)))

	return report, nil
}

func summarize(videos []domain.VideoInfo) PeriodSummary {
	summary := PeriodSummary{VideosPublished: len(videos)}

	var likeRateSum float64
	for _, v := range videos {
		summary.TotalViews += v.Views
		summary.TotalLikes += v.Likes
		if v.Views > 0 {
			likeRateSum += float64(v.Likes) / float64(v.Views) * 100
		}
	}
	if len(videos) > 0 {
		summary.AvgViewsPerVideo = util.Round1(float64(summary.TotalViews) / float64(len(videos)))
		summary.AvgLikeRatePct = util.Round2(likeRateSum / float64(len(videos)))
	}

	summary.TotalViewsFormatted = util.FormatCount(summary.TotalViews)
	summary.TotalLikesFormatted = util.FormatCount(summary.TotalLikes)
	summary.AvgViewsFormatted = util.FormatCount(uint64(summary.AvgViewsPerVideo))

	return summary
}

func topPerformers(videos []domain.VideoInfo) TopPerformers {
	top := TopPerformers{ByViews: []TopVideo{}, ByEngagement: []TopVideo{}}

	byViews := make([]domain.VideoInfo, len(videos))
	copy(byViews, videos)
	sort.SliceStable(byViews, func(i, j int) bool { return byViews[i].Views > byViews[j].Views })

	byLikeRate := make([]domain.VideoInfo, len(videos))
	copy(byLikeRate, videos)
	sort.SliceStable(byLikeRate, func(i, j int) bool { return likeRate(byLikeRate[i]) > likeRate(byLikeRate[j]) })

	for i := 0; i < len(byViews) && i < topPerformerCount; i++ {
		top.ByViews = append(top.ByViews, toTopVideo(byViews[i]))
	}
	for i := 0; i < len(byLikeRate) && i < topPerformerCount; i++ {
		top.ByEngagement = append(top.ByEngagement, toTopVideo(byLikeRate[i]))
	}

	return top
}

func likeRate(v domain.VideoInfo) float64 {
	if v.Views == 0 {
		return 0
	}
	return float64(v.Likes) / float64(v.Views) * 100
}

func toTopVideo(v domain.VideoInfo) TopVideo {
	return TopVideo{
		VideoID:        v.VideoID,
		Title:          v.Title,
		Views:          v.Views,
		ViewsFormatted: v.ViewsFormatted,
		LikeRatePct:    util.Round2(likeRate(v)),
	}
}
