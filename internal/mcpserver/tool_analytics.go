package mcpserver

import (
	"context"
	"fmt"

	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/archish9/youtube-mcp/internal/util"
	apperrors "github.com/archish9/youtube-mcp/pkg/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type VideoAnalyticsInput struct {
	VideoID string `json:"video_id" jsonschema:"YouTube video ID or full URL"`
}

type VideoAnalyticsOutput struct {
	VideoID           string  `json:"video_id"`
	Title             string  `json:"title"`
	Channel           string  `json:"channel"`
	Views             uint64  `json:"views"`
	ViewsFormatted    string  `json:"views_formatted"`
	Likes             uint64  `json:"likes"`
	LikesFormatted    string  `json:"likes_formatted"`
	Comments          uint64  `json:"comments"`
	CommentsFormatted string  `json:"comments_formatted"`
	LikeRatePct       float64 `json:"like_rate_pct"`
	CommentRatePct    float64 `json:"comment_rate_pct"`
	EngagementScore   float64 `json:"engagement_score"`
}

type EngagementInput struct {
	VideoID string `json:"video_id" jsonschema:"YouTube video ID or full URL"`
}

type EngagementAnalysis struct {
	LikeRatePct     float64 `json:"like_rate_pct"`
	LikeRating      string  `json:"like_rating"`
	CommentRatePct  float64 `json:"comment_rate_pct"`
	CommentRating   string  `json:"comment_rating"`
	EngagementScore float64 `json:"engagement_score"`
}

type EngagementOutput struct {
	VideoID            string             `json:"video_id"`
	Title              string             `json:"title"`
	Views              uint64             `json:"views"`
	EngagementAnalysis EngagementAnalysis `json:"engagement_analysis"`
	Interpretation     string             `json:"interpretation"`
}

type PerformanceScoreInput struct {
	VideoID string `json:"video_id" jsonschema:"YouTube video ID or full URL"`
}

type PerformanceScoreOutput struct {
	VideoID          string                   `json:"video_id"`
	Title            string                   `json:"title"`
	PerformanceScore float64                  `json:"performance_score"`
	Grade            string                   `json:"grade"`
	Summary          string                   `json:"summary"`
	Metrics          domain.PerformanceReport `json:"metrics"`
}

type CompareVideosInput struct {
	VideoIDs []string `json:"video_ids" jsonschema:"Two or more YouTube video IDs or URLs to compare"`
}

type CompareVideosOutput struct {
	Comparison *domain.VideoComparison `json:"comparison"`
	Omissions  []string                `json:"omissions,omitempty"`
}

type VideoPotentialInput struct {
	VideoID string `json:"video_id" jsonschema:"YouTube video ID or full URL"`
}

type VideoPotentialOutput struct {
	VideoID             string                 `json:"video_id"`
	Title               string                 `json:"title"`
	Channel             string                 `json:"channel"`
	CurrentMetrics      domain.MetricSnapshot  `json:"current_metrics"`
	Forecast            []domain.ForecastPoint `json:"forecast"`
	QualitySignals      []string               `json:"quality_signals"`
	AreasForImprovement []string               `json:"areas_for_improvement"`
	OverallAssessment   string                 `json:"overall_assessment"`
}

type GrowthTrendInput struct {
	VideoID      string `json:"video_id" jsonschema:"YouTube video ID or full URL"`
	LookbackDays int    `json:"lookback_days,omitempty" jsonschema:"Trend window in days (default 14, clamped to video age)"`
	ForecastDays int    `json:"forecast_days,omitempty" jsonschema:"Days to project ahead (default 7)"`
}

type GrowthTrendOutput struct {
	VideoID      string                  `json:"video_id"`
	Title        string                  `json:"title"`
	Growth       domain.GrowthReport     `json:"growth"`
	ViralMoments []domain.ViralMoment    `json:"viral_moments"`
	Forecast     []domain.ForecastPoint  `json:"forecast"`
	Series       []domain.MetricSnapshot `json:"series"`
	Note         string                  `json:"note"`
}

// seriesNote discloses that trend math runs over a synthesized history; the
// API exposes no real per-video time series without owner access.
const seriesNote = "Historical series is synthesized from the current snapshot; only the latest point is observed data."

func registerAnalyticsTools(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_video_analytics",
		Description: "Get engagement analytics for a YouTube video: like rate, comment rate, and engagement score",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input VideoAnalyticsInput) (*mcp.CallToolResult, VideoAnalyticsOutput, error) {
		vc, err := deps.YouTube.VideoContext(ctx, input.VideoID)
		if err != nil {
			return nil, VideoAnalyticsOutput{}, err
		}
		perf := deps.Analytics.ScorePerformance(vc.Current)
		return nil, VideoAnalyticsOutput{
			VideoID:           vc.VideoID,
			Title:             vc.Title,
			Channel:           vc.ChannelTitle,
			Views:             vc.Current.Views,
			ViewsFormatted:    util.FormatCount(vc.Current.Views),
			Likes:             vc.Current.Likes,
			LikesFormatted:    util.FormatCount(vc.Current.Likes),
			Comments:          vc.Current.Comments,
			CommentsFormatted: util.FormatCount(vc.Current.Comments),
			LikeRatePct:       perf.LikeRatePct,
			CommentRatePct:    perf.CommentRatePct,
			EngagementScore:   perf.EngagementScore,
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_video_engagement",
		Description: "Analyze a video's engagement quality with ratings and interpretation",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input EngagementInput) (*mcp.CallToolResult, EngagementOutput, error) {
		vc, err := deps.YouTube.VideoContext(ctx, input.VideoID)
		if err != nil {
			return nil, EngagementOutput{}, err
		}
		perf := deps.Analytics.ScorePerformance(vc.Current)
		return nil, EngagementOutput{
			VideoID: vc.VideoID,
			Title:   vc.Title,
			Views:   vc.Current.Views,
			EngagementAnalysis: EngagementAnalysis{
				LikeRatePct:     perf.LikeRatePct,
				LikeRating:      perf.LikeRating,
				CommentRatePct:  perf.CommentRatePct,
				CommentRating:   perf.CommentRating,
				EngagementScore: perf.EngagementScore,
			},
			Interpretation: perf.OverallAssessment,
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_video_performance_score",
		Description: "Get a 0-100 performance score and letter grade for a YouTube video",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input PerformanceScoreInput) (*mcp.CallToolResult, PerformanceScoreOutput, error) {
		vc, err := deps.YouTube.VideoContext(ctx, input.VideoID)
		if err != nil {
			return nil, PerformanceScoreOutput{}, err
		}
		perf := deps.Analytics.ScorePerformance(vc.Current)
		return nil, PerformanceScoreOutput{
			VideoID:          vc.VideoID,
			Title:            vc.Title,
			PerformanceScore: perf.Score,
			Grade:            perf.Grade,
			Summary:          perf.OverallAssessment,
			Metrics:          perf,
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare_videos",
		Description: "Compare two or more videos by engagement, with rankings and highlights",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CompareVideosInput) (*mcp.CallToolResult, CompareVideosOutput, error) {
		if len(input.VideoIDs) < 2 {
			return nil, CompareVideosOutput{}, apperrors.NewValidationError(
				"at least 2 videos are required for comparison", "video_ids", len(input.VideoIDs))
		}

		results := deps.YouTube.VideoContexts(ctx, input.VideoIDs)
		contexts := make([]domain.VideoContext, 0, len(results))
		var omissions []string
		for _, r := range results {
			if r.Err != nil {
				deps.Logger.Warn("Skipping video in comparison",
					zap.String("videoId", r.VideoID), zap.Error(r.Err))
				omissions = append(omissions, fmt.Sprintf("%s: %v", r.VideoID, r.Err))
				continue
			}
			contexts = append(contexts, *r.Context)
		}

		comparison, err := deps.Analytics.CompareVideos(contexts)
		if err != nil {
			return nil, CompareVideosOutput{}, err
		}
		return nil, CompareVideosOutput{Comparison: comparison, Omissions: omissions}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_video_potential",
		Description: "Assess a video's quality signals, concerns, and projected growth",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input VideoPotentialInput) (*mcp.CallToolResult, VideoPotentialOutput, error) {
		vc, err := deps.YouTube.VideoContext(ctx, input.VideoID)
		if err != nil {
			return nil, VideoPotentialOutput{}, err
		}
		perf := deps.Analytics.ScorePerformance(vc.Current)
		series := deps.Analytics.Synthesize(*vc, 0)
		growth := deps.Analytics.AnalyzeGrowth(series)
		forecast := deps.Analytics.Forecast(growth, vc.Current.Views, 0)

		return nil, VideoPotentialOutput{
			VideoID:             vc.VideoID,
			Title:               vc.Title,
			Channel:             vc.ChannelTitle,
			CurrentMetrics:      vc.Current,
			Forecast:            forecast,
			QualitySignals:      perf.QualitySignals,
			AreasForImprovement: perf.Concerns,
			OverallAssessment:   perf.OverallAssessment,
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_video_growth_trend",
		Description: "Estimate a video's growth trend: daily rates, viral moments, and a linear forecast over a synthesized history",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input GrowthTrendInput) (*mcp.CallToolResult, GrowthTrendOutput, error) {
		vc, err := deps.YouTube.VideoContext(ctx, input.VideoID)
		if err != nil {
			return nil, GrowthTrendOutput{}, err
		}
		series := deps.Analytics.Synthesize(*vc, input.LookbackDays)
		growth := deps.Analytics.AnalyzeGrowth(series)
		moments := deps.Analytics.DetectViralMoments(series)
		forecast := deps.Analytics.Forecast(growth, vc.Current.Views, input.ForecastDays)

		return nil, GrowthTrendOutput{
			VideoID:      vc.VideoID,
			Title:        vc.Title,
			Growth:       growth,
			ViralMoments: moments,
			Forecast:     forecast,
			Series:       series,
			Note:         seriesNote,
		}, nil
	})
}
