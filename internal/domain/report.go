package domain

import "time"

// GrowthReport holds rate-of-change statistics between the first and last
// snapshot of a synthesized series.
type GrowthReport struct {
	PeriodDays          float64 `json:"period_days"`
	ViewsGrowthRatePct  float64 `json:"views_growth_rate_pct"`
	TotalViewsGrowthPct float64 `json:"total_views_growth_pct"`
	LikesGrowthRatePct  float64 `json:"likes_growth_rate_pct"`
	TotalLikesGrowthPct float64 `json:"total_likes_growth_pct"`
	ViewsPerDay         float64 `json:"views_per_day"`
	LikesPerDay         float64 `json:"likes_per_day"`
}

// ViralMoment marks an interval whose view velocity exceeded the configured
// threshold. The timestamp is the later endpoint of the interval.
type ViralMoment struct {
	Timestamp          time.Time `json:"timestamp"`
	ViewsPerHour       float64   `json:"views_per_hour"`
	TotalViewsAtMoment uint64    `json:"total_views_at_moment"`
}

// PerformanceReport is the deterministic 0-100 score and qualitative rating
// derived from a single live snapshot.
type PerformanceReport struct {
	Score             float64  `json:"score"`
	Grade             string   `json:"grade"`
	LikeRatePct       float64  `json:"like_rate_pct"`
	CommentRatePct    float64  `json:"comment_rate_pct"`
	EngagementScore   float64  `json:"engagement_score"`
	LikeRating        string   `json:"like_rating"`
	CommentRating     string   `json:"comment_rating"`
	QualitySignals    []string `json:"quality_signals"`
	Concerns          []string `json:"concerns"`
	OverallAssessment string   `json:"overall_assessment"`
}

// ForecastPoint is one step of a linear view projection.
type ForecastPoint struct {
	DaysFromNow    int    `json:"days_from_now"`
	PredictedViews uint64 `json:"predicted_views"`
}

// RankedChannel is a channel snapshot with its position in a
// subscriber-ordered comparison.
type RankedChannel struct {
	Rank             int             `json:"rank"`
	Channel          ChannelSnapshot `json:"channel"`
	AvgViewsPerVideo float64         `json:"avg_views_per_video"`
}

// ChannelBenchmark attaches derived engagement figures to a channel for
// target-vs-competitor reporting.
type ChannelBenchmark struct {
	Channel          ChannelSnapshot `json:"channel"`
	AvgViewsPerVideo float64         `json:"avg_views_per_video"`
	EngagementScore  float64         `json:"engagement_score"`
}

type BenchmarkReport struct {
	Target         ChannelBenchmark   `json:"target"`
	Competitors    []ChannelBenchmark `json:"competitors"`
	TotalChannels  int                `json:"total_channels"`
	SubscriberRank int                `json:"subscriber_rank"`
	EngagementRank int                `json:"engagement_rank"`
}

// CompetitivePosition lists the metrics a target channel is strictly best or
// strictly worst at within a comparison set. Ties count as neither.
type CompetitivePosition struct {
	ChannelID  string   `json:"channel_id"`
	Title      string   `json:"title"`
	Advantages []string `json:"advantages"`
	Weaknesses []string `json:"weaknesses"`
}

type MarketShare struct {
	ChannelID          string  `json:"channel_id"`
	Title              string  `json:"title"`
	SubscriberSharePct float64 `json:"subscriber_share_pct"`
	ViewSharePct       float64 `json:"view_share_pct"`
}

type MarketShareReport struct {
	TotalSubscribers uint64        `json:"total_subscribers"`
	TotalViews       uint64        `json:"total_views"`
	Channels         []MarketShare `json:"channels"`
}

// ContentStrategyReport estimates a channel's posting cadence from its video
// count and creation date.
type ContentStrategyReport struct {
	ChannelID        string  `json:"channel_id"`
	Title            string  `json:"title"`
	VideoCount       uint64  `json:"video_count"`
	MonthsActive     float64 `json:"months_active"`
	VideosPerMonth   float64 `json:"videos_per_month"`
	PostingFrequency string  `json:"posting_frequency"`
}

// RankedVideo is one entry of a multi-video engagement comparison.
type RankedVideo struct {
	Rank            int     `json:"rank"`
	VideoID         string  `json:"video_id"`
	Title           string  `json:"title"`
	Views           uint64  `json:"views"`
	LikeRatePct     float64 `json:"like_rate_pct"`
	EngagementScore float64 `json:"engagement_score"`
}

type VideoComparisonHighlights struct {
	BestEngagement RankedVideo `json:"best_engagement"`
	MostViews      RankedVideo `json:"most_views"`
	BestLikeRate   RankedVideo `json:"best_like_rate"`
}

type VideoComparison struct {
	VideosCompared int                       `json:"videos_compared"`
	Ranking        []RankedVideo             `json:"ranking_by_engagement"`
	Highlights     VideoComparisonHighlights `json:"highlights"`
}
