package analytics

import (
	"math"

	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/archish9/youtube-mcp/internal/util"
)

// Score composition: engagement and reach each contribute up to half of the
// 0-100 scale, so neither raw views nor a tiny but engaged audience can
// saturate the score alone. Reach is scored on a log10 scale: an order of
// magnitude more views earns one increment, capping at 100M.
const (
	engagementCapPct   = 5.0 // engagement score at which the component maxes out
	engagementMaxScore = 50.0
	reachLogCap        = 8.0 // log10(100M)
	reachMaxScore      = 50.0
)

// ScorePerformance converts a single live snapshot into the deterministic
// 0-100 score, letter grade, and qualitative ratings. It operates on ground
// truth only; no synthesis is involved.
func (e *Engine) ScorePerformance(snap domain.MetricSnapshot) domain.PerformanceReport {
	report := domain.PerformanceReport{
		Grade:          "F",
		LikeRating:     "Below Average",
		CommentRating:  "Low Engagement",
		QualitySignals: []string{},
		Concerns:       []string{},
	}

	if snap.Views == 0 {
		report.Concerns = append(report.Concerns, "No views recorded yet")
		report.OverallAssessment = "Not enough data to assess performance"
		return report
	}

	views := float64(snap.Views)
	likeRate := float64(snap.Likes) / views * 100
	commentRate := float64(snap.Comments) / views * 100
	engagement := likeRate*e.cfg.LikeWeight + commentRate*e.cfg.CommentWeight

	report.LikeRatePct = util.Round2(likeRate)
	report.CommentRatePct = util.Round2(commentRate)
	report.EngagementScore = util.Round2(engagement)

	engagementComponent := math.Min(engagement, engagementCapPct) / engagementCapPct * engagementMaxScore
	reachComponent := math.Min(math.Log10(views), reachLogCap) / reachLogCap * reachMaxScore
	report.Score = util.Round1(util.Clamp(engagementComponent+reachComponent, 0, 100))

	switch {
	case report.Score >= 80:
		report.Grade = "A"
	case report.Score >= 60:
		report.Grade = "B"
	case report.Score >= 40:
		report.Grade = "C"
	case report.Score >= 20:
		report.Grade = "D"
	}

	switch {
	case likeRate >= 5:
		report.LikeRating = "Excellent"
	case likeRate >= 3:
		report.LikeRating = "Good"
	case likeRate >= 1:
		report.LikeRating = "Average"
	}

	switch {
	case commentRate >= 0.5:
		report.CommentRating = "High Engagement"
	case commentRate >= 0.05:
		report.CommentRating = "Moderate Engagement"
	}

	if likeRate >= 5 {
		report.QualitySignals = append(report.QualitySignals, "High like-to-view ratio")
	}
	if snap.Views > 1_000_000 {
		report.QualitySignals = append(report.QualitySignals, "Viral reach")
	}
	if commentRate >= 0.5 {
		report.QualitySignals = append(report.QualitySignals, "Active comment section")
	}

	if likeRate < 1 {
		report.Concerns = append(report.Concerns, "Low like rate")
	}
	if commentRate < 0.05 {
		report.Concerns = append(report.Concerns, "Low comment rate")
	}
	if snap.Views < 1000 {
		report.Concerns = append(report.Concerns, "Limited reach so far")
	}

	report.OverallAssessment = assessment(report.Score)

	return report
}

func assessment(score float64) string {
	switch {
	case score >= 80:
		return "Exceptional performance across reach and engagement"
	case score >= 60:
		return "Strong performance with room to grow"
	case score >= 40:
		return "Moderate performance, engagement could improve"
	case score >= 20:
		return "Below average performance"
	default:
		return "Weak performance, needs attention"
	}
}
