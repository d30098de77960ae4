package benchmark

import (
	"testing"
	"time"

	"github.com/archish9/youtube-mcp/internal/domain"
	apperrors "github.com/archish9/youtube-mcp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func channel(id string, subs, views, videos uint64) domain.ChannelSnapshot {
	return domain.ChannelSnapshot{
		ChannelID:   id,
		Title:       "Channel " + id,
		Subscribers: subs,
		TotalViews:  views,
		VideoCount:  videos,
	}
}

func TestCompareChannelsRanksBySubscribers(t *testing.T) {
	e := NewEngine(nil)
	snapshots := []domain.ChannelSnapshot{
		channel("small", 1000, 50000, 100),
		channel("big", 1_000_000, 500_000_000, 2000),
		channel("mid", 50000, 2_000_000, 400),
	}

	ranked, err := e.CompareChannels(snapshots)

	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "big", ranked[0].Channel.ChannelID)
	assert.Equal(t, "mid", ranked[1].Channel.ChannelID)
	assert.Equal(t, "small", ranked[2].Channel.ChannelID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 3, ranked[2].Rank)
	assert.Equal(t, 250000.0, ranked[0].AvgViewsPerVideo)
}

func TestCompareChannelsRequiresTwo(t *testing.T) {
	e := NewEngine(nil)

	_, err := e.CompareChannels([]domain.ChannelSnapshot{channel("solo", 1, 1, 1)})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAnalyzeContentStrategyCadence(t *testing.T) {
	e := NewEngine(nil)
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		ageDays   float64
		videos    uint64
		frequency string
	}{
		{"daily uploader", 304.4, 300, "Daily"},
		{"weekly uploader", 304.4, 50, "Weekly"},
		{"monthly uploader", 304.4, 10, "Monthly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := channel("c", 1000, 100000, tt.videos)
			snap.PublishedAt = now.Add(-time.Duration(tt.ageDays*24) * time.Hour)

			report := e.AnalyzeContentStrategy(snap, now)

			assert.Equal(t, tt.frequency, report.PostingFrequency)
			assert.Equal(t, 10.0, report.MonthsActive)
		})
	}
}

func TestAnalyzeContentStrategyClampsYoungChannels(t *testing.T) {
	e := NewEngine(nil)
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	snap := channel("new", 100, 1000, 30)
	snap.PublishedAt = now.Add(-24 * time.Hour)

	report := e.AnalyzeContentStrategy(snap, now)

	// A day-old channel is treated as one month old, not a fraction.
	assert.Equal(t, 1.0, report.MonthsActive)
	assert.Equal(t, 30.0, report.VideosPerMonth)
	assert.Equal(t, "Daily", report.PostingFrequency)
}

func TestBenchmarkPerformanceRanks(t *testing.T) {
	e := NewEngine(nil)
	target := channel("target", 50000, 5_000_000, 100) // avg 50k, engagement 1.0
	competitors := []domain.ChannelSnapshot{
		channel("bigger", 100000, 1_000_000, 100), // avg 10k, engagement 0.1
		channel("smaller", 10000, 100_000, 100),   // avg 1k, engagement 0.1
	}

	report, err := e.BenchmarkPerformance(target, competitors)

	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalChannels)
	assert.Equal(t, 2, report.SubscriberRank)
	assert.Equal(t, 1, report.EngagementRank)
	assert.Equal(t, 50000.0, report.Target.AvgViewsPerVideo)
}

func TestBenchmarkPerformanceLastPlace(t *testing.T) {
	e := NewEngine(nil)
	target := channel("target", 10, 100, 10)
	competitors := []domain.ChannelSnapshot{
		channel("a", 1000, 1_000_000, 10),
		channel("b", 2000, 2_000_000, 10),
		channel("c", 3000, 3_000_000, 10),
	}

	report, err := e.BenchmarkPerformance(target, competitors)

	require.NoError(t, err)
	assert.Equal(t, 4, report.SubscriberRank)
}

func TestBenchmarkPerformanceRequiresCompetitors(t *testing.T) {
	e := NewEngine(nil)

	_, err := e.BenchmarkPerformance(channel("t", 1, 1, 1), nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCompetitiveAdvantagesStrictExtremes(t *testing.T) {
	e := NewEngine(nil)
	target := channel("target", 100000, 1_000_000, 100)
	comparisons := []domain.ChannelSnapshot{
		channel("a", 50000, 5_000_000, 100),
		channel("b", 20000, 2_000_000, 100),
	}

	position, err := e.CompetitiveAdvantages(target, comparisons)

	require.NoError(t, err)
	assert.Contains(t, position.Advantages, "Most subscribers")
	assert.Contains(t, position.Weaknesses, "Lowest total views")
	assert.Contains(t, position.Weaknesses, "Weakest avg views per video")
}

func TestCompetitiveAdvantagesIdenticalChannelsYieldNeither(t *testing.T) {
	e := NewEngine(nil)
	target := channel("target", 1000, 100000, 50)
	twin := channel("twin", 1000, 100000, 50)

	position, err := e.CompetitiveAdvantages(target, []domain.ChannelSnapshot{twin})

	require.NoError(t, err)
	assert.Empty(t, position.Advantages)
	assert.Empty(t, position.Weaknesses)
}

func TestMarketShareSplits(t *testing.T) {
	e := NewEngine(nil)
	snapshots := []domain.ChannelSnapshot{
		channel("a", 200, 200_000_000, 10),
		channel("b", 100, 100_000_000, 10),
	}

	report, err := e.MarketShare(snapshots)

	require.NoError(t, err)
	assert.Equal(t, uint64(300), report.TotalSubscribers)
	assert.Equal(t, uint64(300_000_000), report.TotalViews)
	require.Len(t, report.Channels, 2)
	assert.Equal(t, 66.67, report.Channels[0].SubscriberSharePct)
	assert.Equal(t, 33.33, report.Channels[1].SubscriberSharePct)
	assert.Equal(t, 66.67, report.Channels[0].ViewSharePct)
}

func TestMarketShareZeroTotals(t *testing.T) {
	e := NewEngine(nil)
	snapshots := []domain.ChannelSnapshot{
		channel("a", 0, 0, 0),
		channel("b", 0, 0, 0),
	}

	report, err := e.MarketShare(snapshots)

	require.NoError(t, err)
	for _, ch := range report.Channels {
		assert.Zero(t, ch.SubscriberSharePct)
		assert.Zero(t, ch.ViewSharePct)
	}
}

func TestMarketShareRequiresTwo(t *testing.T) {
	e := NewEngine(nil)

	_, err := e.MarketShare([]domain.ChannelSnapshot{channel("solo", 1, 1, 1)})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
