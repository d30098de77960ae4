package analytics

import (
	"sort"

	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/archish9/youtube-mcp/internal/util"
	apperrors "github.com/archish9/youtube-mcp/pkg/errors"
)

// CompareVideos ranks two or more videos by engagement score and extracts
// the best performer per metric. Zero-view videos rank with zero engagement
// rather than erroring out.
func (e *Engine) CompareVideos(contexts []domain.VideoContext) (*domain.VideoComparison, error) {
	if len(contexts) < 2 {
		return nil, apperrors.NewValidationError(
			"at least 2 videos are required for comparison", "video_ids", len(contexts))
	}

	ranked := make([]domain.RankedVideo, 0, len(contexts))
	for _, vc := range contexts {
		perf := e.ScorePerformance(vc.Current)
		ranked = append(ranked, domain.RankedVideo{
			VideoID:         vc.VideoID,
			Title:           vc.Title,
			Views:           vc.Current.Views,
			LikeRatePct:     perf.LikeRatePct,
			EngagementScore: perf.EngagementScore,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EngagementScore > ranked[j].EngagementScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].LikeRatePct = util.Round2(ranked[i].LikeRatePct)
	}

	comparison := &domain.VideoComparison{
		VideosCompared: len(ranked),
		Ranking:        ranked,
		Highlights: domain.VideoComparisonHighlights{
			BestEngagement: ranked[0],
		},
	}

	mostViews, bestLikeRate := ranked[0], ranked[0]
	for _, rv := range ranked[1:] {
		if rv.Views > mostViews.Views {
			mostViews = rv
		}
		if rv.LikeRatePct > bestLikeRate.LikeRatePct {
			bestLikeRate = rv
		}
	}
	comparison.Highlights.MostViews = mostViews
	comparison.Highlights.BestLikeRate = bestLikeRate

	return comparison, nil
}
