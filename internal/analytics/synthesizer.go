package analytics

import (
	"math"
	"time"

	"github.com/archish9/youtube-mcp/internal/domain"
	"go.uber.org/zap"
)

// growthExponent shapes the synthesized cumulative-view curve. Values below
// 1 give a concave curve with diminishing daily increments, which matches
// how view accumulation typically decays after publication. The curve is
// exact at both anchors regardless of the exponent.
const growthExponent = 0.6

// Synthesize builds a daily series of snapshots over the lookback window,
// anchored conceptually at (publishedAt, zero) and exactly at the live
// snapshot. It never fails: malformed input degrades to a single-point
// series equal to the current snapshot, which zeroes all downstream rates.
//
// Invariants: strictly increasing timestamps, non-decreasing non-negative
// metrics, last point identical to ctx.Current.
func (e *Engine) Synthesize(ctx domain.VideoContext, lookbackDays int) domain.SynthesizedSeries {
	if lookbackDays <= 0 {
		lookbackDays = e.cfg.DefaultLookbackDays
	}

	now := ctx.Current.Timestamp
	if now.IsZero() {
		now = time.Now()
	}

	age := now.Sub(ctx.PublishedAt)
	if ctx.PublishedAt.IsZero() || age <= 0 {
		e.logger.Debug("Synthesizer degenerate input, returning single-point series",
			zap.String("videoId", ctx.VideoID))
		return domain.SynthesizedSeries{ctx.Current}
	}

	window := time.Duration(lookbackDays) * 24 * time.Hour
	if window > age {
		window = age
	}

	points := int(window.Hours()/24) + 1
	if points < 2 {
		points = 2
	}
	start := now.Add(-window)
	step := window / time.Duration(points-1)

	series := make(domain.SynthesizedSeries, 0, points)

	if ctx.Current.Views == 0 {
		// Nothing to interpolate; emit a flat zero series over the window.
		for i := 0; i < points; i++ {
			series = append(series, domain.MetricSnapshot{Timestamp: start.Add(time.Duration(i) * step)})
		}
		series[len(series)-1] = ctx.Current
		return series
	}

	likeRate := float64(ctx.Current.Likes) / float64(ctx.Current.Views)
	commentRate := float64(ctx.Current.Comments) / float64(ctx.Current.Views)

	for i := 0; i < points; i++ {
		ts := start.Add(time.Duration(i) * step)

		// Cumulative views modeled as current * (ageAtPoint/age)^exponent.
		// For points inside the window this interpolates concavely between
		// the implied window-start total and the live total.
		ageFrac := ts.Sub(ctx.PublishedAt).Hours() / age.Hours()
		if ageFrac < 0 {
			ageFrac = 0
		}
		progress := math.Pow(ageFrac, growthExponent)

		views := uint64(math.Round(float64(ctx.Current.Views) * progress))
		snap := domain.MetricSnapshot{
			Timestamp: ts,
			Views:     views,
			Likes:     uint64(math.Round(float64(views) * likeRate)),
			Comments:  uint64(math.Round(float64(views) * commentRate)),
		}

		// Rounding must never produce a decrease.
		if i > 0 {
			prev := series[i-1]
			if snap.Views < prev.Views {
				snap.Views = prev.Views
			}
			if snap.Likes < prev.Likes {
				snap.Likes = prev.Likes
			}
			if snap.Comments < prev.Comments {
				snap.Comments = prev.Comments
			}
		}
		series = append(series, snap)
	}

	// Anchor invariant: the last point is the live snapshot, exactly.
	series[len(series)-1] = ctx.Current

	return series
}
