package analytics

import (
	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/archish9/youtube-mcp/internal/util"
)

// AnalyzeGrowth computes rate statistics between the first and last snapshot
// of a series. A single-point or zero-span series yields all-zero rates
// rather than a division error.
func (e *Engine) AnalyzeGrowth(series domain.SynthesizedSeries) domain.GrowthReport {
	periodDays := series.PeriodDays()
	report := domain.GrowthReport{PeriodDays: util.Round1(periodDays)}
	if periodDays <= 0 {
		return report
	}

	first, last := series.First(), series.Last()

	viewsDelta := float64(last.Views) - float64(first.Views)
	likesDelta := float64(last.Likes) - float64(first.Likes)

	firstViews := float64(first.Views)
	if firstViews < 1 {
		firstViews = 1
	}
	firstLikes := float64(first.Likes)
	if firstLikes < 1 {
		firstLikes = 1
	}

	report.TotalViewsGrowthPct = util.Round1(viewsDelta / firstViews * 100)
	report.TotalLikesGrowthPct = util.Round1(likesDelta / firstLikes * 100)
	report.ViewsGrowthRatePct = util.Round1(viewsDelta / firstViews * 100 / periodDays)
	report.LikesGrowthRatePct = util.Round1(likesDelta / firstLikes * 100 / periodDays)
	report.ViewsPerDay = util.Round1(viewsDelta / periodDays)
	report.LikesPerDay = util.Round1(likesDelta / periodDays)

	return report
}
