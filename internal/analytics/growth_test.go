package analytics

import (
	"testing"
	"time"

	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/stretchr/testify/assert"
)

func snapshotAt(ts time.Time, views, likes uint64) domain.MetricSnapshot {
	return domain.MetricSnapshot{Timestamp: ts, Views: views, Likes: likes}
}

func TestAnalyzeGrowthTwoPointSeries(t *testing.T) {
	e := testEngine()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := domain.SynthesizedSeries{
		snapshotAt(start, 1000, 100),
		snapshotAt(start.Add(10*24*time.Hour), 2000, 200),
	}

	report := e.AnalyzeGrowth(series)

	assert.Equal(t, 10.0, report.PeriodDays)
	assert.Equal(t, 100.0, report.TotalViewsGrowthPct)
	assert.Equal(t, 10.0, report.ViewsGrowthRatePct)
	assert.Equal(t, 100.0, report.ViewsPerDay)
	assert.Equal(t, 100.0, report.TotalLikesGrowthPct)
	assert.Equal(t, 10.0, report.LikesPerDay)
}

func TestAnalyzeGrowthSinglePointIsZero(t *testing.T) {
	e := testEngine()
	series := domain.SynthesizedSeries{
		snapshotAt(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 5000, 100),
	}

	report := e.AnalyzeGrowth(series)

	assert.Zero(t, report.PeriodDays)
	assert.Zero(t, report.ViewsPerDay)
	assert.Zero(t, report.TotalViewsGrowthPct)
}

func TestAnalyzeGrowthZeroStartUsesFloorOfOne(t *testing.T) {
	e := testEngine()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := domain.SynthesizedSeries{
		snapshotAt(start, 0, 0),
		snapshotAt(start.Add(2*24*time.Hour), 100, 0),
	}

	report := e.AnalyzeGrowth(series)

	// Division floors the zero baseline at 1 instead of exploding.
	assert.Equal(t, 10000.0, report.TotalViewsGrowthPct)
	assert.Equal(t, 50.0, report.ViewsPerDay)
}

func TestAnalyzeGrowthFlatSeriesIsZeroRates(t *testing.T) {
	e := testEngine()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := domain.SynthesizedSeries{
		snapshotAt(start, 7777, 300),
		snapshotAt(start.Add(5*24*time.Hour), 7777, 300),
	}

	report := e.AnalyzeGrowth(series)

	assert.Equal(t, 5.0, report.PeriodDays)
	assert.Zero(t, report.ViewsPerDay)
	assert.Zero(t, report.TotalViewsGrowthPct)
	assert.Zero(t, report.LikesPerDay)
}
