// Package benchmark implements cross-sectional channel comparison: ranking,
// content-strategy estimation, competitive advantage extraction, and market
// share. All inputs are point-in-time snapshots; there is no time dimension.
package benchmark

import (
	"sort"
	"time"

	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/archish9/youtube-mcp/internal/util"
	apperrors "github.com/archish9/youtube-mcp/pkg/errors"
	"go.uber.org/zap"
)

const (
	dailyVideosPerMonth  = 20
	weeklyVideosPerMonth = 4
	avgDaysPerMonth      = 30.44
)

type Engine struct {
	logger *zap.Logger
}

func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// CompareChannels orders channels by subscriber count (descending) and
// attaches average views per video. At least two channels are required.
func (e *Engine) CompareChannels(snapshots []domain.ChannelSnapshot) ([]domain.RankedChannel, error) {
	if len(snapshots) < 2 {
		return nil, apperrors.NewValidationError(
			"at least 2 channels are required for comparison", "channel_ids", len(snapshots))
	}

	sorted := make([]domain.ChannelSnapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Subscribers > sorted[j].Subscribers
	})

	ranked := make([]domain.RankedChannel, 0, len(sorted))
	for i, snap := range sorted {
		ranked = append(ranked, domain.RankedChannel{
			Rank:             i + 1,
			Channel:          snap,
			AvgViewsPerVideo: util.Round1(snap.AvgViewsPerVideo()),
		})
	}
	return ranked, nil
}

// AnalyzeContentStrategy estimates posting cadence from the upload count
// and the channel creation date (the closest proxy for the oldest upload
// the API exposes without paging the full upload playlist).
func (e *Engine) AnalyzeContentStrategy(snap domain.ChannelSnapshot, now time.Time) domain.ContentStrategyReport {
	months := now.Sub(snap.PublishedAt).Hours() / 24 / avgDaysPerMonth
	if snap.PublishedAt.IsZero() || months < 1 {
		months = 1
	}

	videosPerMonth := float64(snap.VideoCount) / months

	frequency := "Monthly"
	switch {
	case videosPerMonth >= dailyVideosPerMonth:
		frequency = "Daily"
	case videosPerMonth >= weeklyVideosPerMonth:
		frequency = "Weekly"
	}

	return domain.ContentStrategyReport{
		ChannelID:        snap.ChannelID,
		Title:            snap.Title,
		VideoCount:       snap.VideoCount,
		MonthsActive:     util.Round1(months),
		VideosPerMonth:   util.Round1(videosPerMonth),
		PostingFrequency: frequency,
	}
}

// BenchmarkPerformance ranks the target channel among itself plus its
// competitors by subscribers and by engagement score. Rank 1 is best; ties
// share a rank.
func (e *Engine) BenchmarkPerformance(target domain.ChannelSnapshot, competitors []domain.ChannelSnapshot) (*domain.BenchmarkReport, error) {
	if len(competitors) == 0 {
		return nil, apperrors.NewValidationError(
			"at least 1 competitor is required for benchmarking", "competitor_channel_ids", 0)
	}

	report := &domain.BenchmarkReport{
		Target:         toBenchmark(target),
		TotalChannels:  len(competitors) + 1,
		SubscriberRank: 1,
		EngagementRank: 1,
	}

	targetEngagement := target.EngagementScore()
	for _, c := range competitors {
		report.Competitors = append(report.Competitors, toBenchmark(c))
		if c.Subscribers > target.Subscribers {
			report.SubscriberRank++
		}
		if c.EngagementScore() > targetEngagement {
			report.EngagementRank++
		}
	}

	return report, nil
}

func toBenchmark(snap domain.ChannelSnapshot) domain.ChannelBenchmark {
	return domain.ChannelBenchmark{
		Channel:          snap,
		AvgViewsPerVideo: util.Round1(snap.AvgViewsPerVideo()),
		EngagementScore:  util.Round2(snap.EngagementScore()),
	}
}

// CompetitiveAdvantages lists the metrics the target is strictly best at
// across the comparison set (advantages) and strictly worst at
// (weaknesses). A tie on a metric counts as neither, so identical channels
// yield empty lists.
func (e *Engine) CompetitiveAdvantages(target domain.ChannelSnapshot, comparisons []domain.ChannelSnapshot) (*domain.CompetitivePosition, error) {
	if len(comparisons) == 0 {
		return nil, apperrors.NewValidationError(
			"at least 1 comparison channel is required", "comparison_channel_ids", 0)
	}

	position := &domain.CompetitivePosition{
		ChannelID:  target.ChannelID,
		Title:      target.Title,
		Advantages: []string{},
		Weaknesses: []string{},
	}

	metrics := []struct {
		value     func(domain.ChannelSnapshot) float64
		advantage string
		weakness  string
	}{
		{func(c domain.ChannelSnapshot) float64 { return float64(c.Subscribers) },
			"Most subscribers", "Fewest subscribers"},
		{func(c domain.ChannelSnapshot) float64 { return float64(c.TotalViews) },
			"Highest total views", "Lowest total views"},
		{func(c domain.ChannelSnapshot) float64 { return c.AvgViewsPerVideo() },
			"Best avg views per video", "Weakest avg views per video"},
	}

	for _, m := range metrics {
		targetValue := m.value(target)
		best, worst := true, true
		for _, c := range comparisons {
			v := m.value(c)
			if v >= targetValue {
				best = false
			}
			if v <= targetValue {
				worst = false
			}
		}
		if best {
			position.Advantages = append(position.Advantages, m.advantage)
		}
		if worst {
			position.Weaknesses = append(position.Weaknesses, m.weakness)
		}
	}

	return position, nil
}

// MarketShare computes each channel's fraction of the combined subscriber
// and view totals. Shares sum to 100% modulo floating rounding.
func (e *Engine) MarketShare(snapshots []domain.ChannelSnapshot) (*domain.MarketShareReport, error) {
	if len(snapshots) < 2 {
		return nil, apperrors.NewValidationError(
			"at least 2 channels are required for market share", "channel_ids", len(snapshots))
	}

	report := &domain.MarketShareReport{}
	for _, snap := range snapshots {
		report.TotalSubscribers += snap.Subscribers
		report.TotalViews += snap.TotalViews
	}

	for _, snap := range snapshots {
		share := domain.MarketShare{
			ChannelID: snap.ChannelID,
			Title:     snap.Title,
		}
		if report.TotalSubscribers > 0 {
			share.SubscriberSharePct = util.Round2(float64(snap.Subscribers) / float64(report.TotalSubscribers) * 100)
		}
		if report.TotalViews > 0 {
			share.ViewSharePct = util.Round2(float64(snap.TotalViews) / float64(report.TotalViews) * 100)
		}
		report.Channels = append(report.Channels, share)
	}

	return report, nil
}
