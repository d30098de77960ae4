package analytics

import (
	"testing"
	"time"

	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectViralMomentsFlatSeries(t *testing.T) {
	e := testEngine()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := domain.SynthesizedSeries{
		snapshotAt(start, 5000, 100),
		snapshotAt(start.Add(24*time.Hour), 5000, 100),
		snapshotAt(start.Add(48*time.Hour), 5000, 100),
	}

	assert.Empty(t, e.DetectViralMoments(series))
}

func TestDetectViralMomentsSpikeAboveThreshold(t *testing.T) {
	e := testEngine()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := domain.SynthesizedSeries{
		snapshotAt(start, 0, 0),
		snapshotAt(start.Add(time.Hour), 20000, 500),
		snapshotAt(start.Add(2*time.Hour), 21000, 510),
	}

	moments := e.DetectViralMoments(series)

	require.Len(t, moments, 1)
	assert.Equal(t, start.Add(time.Hour), moments[0].Timestamp)
	assert.Equal(t, 20000.0, moments[0].ViewsPerHour)
	assert.Equal(t, uint64(20000), moments[0].TotalViewsAtMoment)
}

func TestDetectViralMomentsAtThresholdIsNotViral(t *testing.T) {
	e := testEngine()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := domain.SynthesizedSeries{
		snapshotAt(start, 0, 0),
		snapshotAt(start.Add(time.Hour), 10000, 0),
	}

	// Exactly at the threshold: the comparison is strict.
	assert.Empty(t, e.DetectViralMoments(series))
}

func TestDetectViralMomentsSkipsZeroSpanIntervals(t *testing.T) {
	e := testEngine()
	ts := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := domain.SynthesizedSeries{
		snapshotAt(ts, 0, 0),
		snapshotAt(ts, 1_000_000, 0),
	}

	assert.Empty(t, e.DetectViralMoments(series))
}

func TestDetectViralMomentsCustomThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ViralThresholdViewsPerHour = 100
	e := NewEngine(cfg, nil)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := domain.SynthesizedSeries{
		snapshotAt(start, 1000, 0),
		snapshotAt(start.Add(time.Hour), 1200, 0),
	}

	moments := e.DetectViralMoments(series)

	require.Len(t, moments, 1)
	assert.Equal(t, 200.0, moments[0].ViewsPerHour)
}
