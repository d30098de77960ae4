package report

import (
	"context"
	"testing"
	"time"

	"github.com/archish9/youtube-mcp/internal/analytics"
	"github.com/archish9/youtube-mcp/internal/domain"
	apperrors "github.com/archish9/youtube-mcp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoSource struct {
	video *domain.VideoInfo
	err   error
}

func (f *fakeVideoSource) Video(_ context.Context, _ string) (*domain.VideoInfo, error) {
	return f.video, f.err
}

type fakeChannelSource struct {
	channel *domain.ChannelInfo
	recent  []domain.VideoInfo
	err     error
}

func (f *fakeChannelSource) Channel(_ context.Context, _ string) (*domain.ChannelInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.channel, nil
}

func (f *fakeChannelSource) RecentVideos(_ context.Context, _ string, _ int64) ([]domain.VideoInfo, error) {
	return f.recent, nil
}

func upload(id string, age time.Duration, views, likes uint64) domain.VideoInfo {
	return domain.VideoInfo{
		VideoID:     id,
		Title:       "Upload " + id,
		PublishedAt: time.Now().Add(-age),
		Views:       views,
		Likes:       likes,
	}
}

func newTestGenerator(videos VideoSource, channels ChannelSource) *Generator {
	return NewGenerator(videos, channels, analytics.NewEngine(analytics.DefaultConfig(), nil), nil)
}

func TestGenerateVideoReport(t *testing.T) {
	source := &fakeVideoSource{video: &domain.VideoInfo{
		VideoID:  "vid1",
		Title:    "Test",
		Views:    1_000_000,
		Likes:    50_000,
		Comments: 5_000,
	}}
	g := newTestGenerator(source, nil)

	report, err := g.GenerateVideoReport(context.Background(), "vid1")

	require.NoError(t, err)
	assert.Equal(t, "vid1", report.Video.VideoID)
	assert.Equal(t, 74.0, report.Performance.Score)
	assert.Equal(t, "B", report.Performance.Grade)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestGenerateVideoReportPropagatesNotFound(t *testing.T) {
	source := &fakeVideoSource{err: apperrors.NewNotFoundError("video", "missing")}
	g := newTestGenerator(source, nil)

	_, err := g.GenerateVideoReport(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGenerateChannelReportFiltersPeriod(t *testing.T) {
	channels := &fakeChannelSource{
		channel: &domain.ChannelInfo{ChannelID: "UCabc", Title: "Test Channel"},
		recent: []domain.VideoInfo{
			upload("fresh1", 24*time.Hour, 1000, 100),
			upload("fresh2", 3*24*time.Hour, 3000, 60),
			upload("stale", 30*24*time.Hour, 999_999, 1),
		},
	}
	g := newTestGenerator(nil, channels)

	report, err := g.GenerateChannelReport(context.Background(), "UCabc", 7, false)

	require.NoError(t, err)
	assert.Equal(t, 7, report.PeriodDays)
	assert.Equal(t, 2, report.PeriodSummary.VideosPublished)
	assert.Equal(t, uint64(4000), report.PeriodSummary.TotalViews)
	assert.Equal(t, uint64(160), report.PeriodSummary.TotalLikes)
	assert.Equal(t, 2000.0, report.PeriodSummary.AvgViewsPerVideo)
	// (10% + 2%) / 2
	assert.Equal(t, 6.0, report.PeriodSummary.AvgLikeRatePct)
	assert.Empty(t, report.Videos)
}

func TestGenerateChannelReportTopPerformers(t *testing.T) {
	channels := &fakeChannelSource{
		channel: &domain.ChannelInfo{ChannelID: "UCabc", Title: "Test Channel"},
		recent: []domain.VideoInfo{
			upload("views", 24*time.Hour, 100_000, 1000),
			upload("engaged", 24*time.Hour, 1000, 200),
			upload("quiet", 24*time.Hour, 500, 5),
			upload("tiny", 24*time.Hour, 100, 1),
		},
	}
	g := newTestGenerator(nil, channels)

	report, err := g.GenerateChannelReport(context.Background(), "UCabc", 7, true)

	require.NoError(t, err)
	require.Len(t, report.TopPerformers.ByViews, 3)
	assert.Equal(t, "views", report.TopPerformers.ByViews[0].VideoID)
	require.Len(t, report.TopPerformers.ByEngagement, 3)
	assert.Equal(t, "engaged", report.TopPerformers.ByEngagement[0].VideoID)
	assert.Equal(t, 20.0, report.TopPerformers.ByEngagement[0].LikeRatePct)
	assert.Len(t, report.Videos, 4)
}

func TestGenerateChannelReportDefaultPeriod(t *testing.T) {
	channels := &fakeChannelSource{
		channel: &domain.ChannelInfo{ChannelID: "UCabc", Title: "Test Channel"},
	}
	g := newTestGenerator(nil, channels)

	report, err := g.GenerateChannelReport(context.Background(), "UCabc", 0, false)

	require.NoError(t, err)
	assert.Equal(t, 7, report.PeriodDays)
	assert.Zero(t, report.PeriodSummary.VideosPublished)
	assert.Empty(t, report.TopPerformers.ByViews)
}

func TestGenerateChannelReportPropagatesChannelError(t *testing.T) {
	channels := &fakeChannelSource{err: apperrors.NewNotFoundError("channel", "UCnope")}
	g := newTestGenerator(nil, channels)

	_, err := g.GenerateChannelReport(context.Background(), "UCnope", 7, false)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
