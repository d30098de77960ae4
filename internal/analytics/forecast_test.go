package analytics

import (
	"testing"

	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastLinearProjection(t *testing.T) {
	e := testEngine()
	growth := domain.GrowthReport{ViewsPerDay: 100}

	points := e.Forecast(growth, 1000, 3)

	require.Len(t, points, 3)
	assert.Equal(t, domain.ForecastPoint{DaysFromNow: 1, PredictedViews: 1100}, points[0])
	assert.Equal(t, domain.ForecastPoint{DaysFromNow: 2, PredictedViews: 1200}, points[1])
	assert.Equal(t, domain.ForecastPoint{DaysFromNow: 3, PredictedViews: 1300}, points[2])
}

func TestForecastZeroRateIsFlat(t *testing.T) {
	e := testEngine()

	points := e.Forecast(domain.GrowthReport{}, 5000, 4)

	require.Len(t, points, 4)
	for _, p := range points {
		assert.Equal(t, uint64(5000), p.PredictedViews)
	}
}

func TestForecastNegativeRatePlateaus(t *testing.T) {
	e := testEngine()
	growth := domain.GrowthReport{ViewsPerDay: -500}

	points := e.Forecast(growth, 10000, 2)

	require.Len(t, points, 2)
	assert.Equal(t, uint64(10000), points[0].PredictedViews)
	assert.Equal(t, uint64(10000), points[1].PredictedViews)
}

func TestForecastDefaultHorizon(t *testing.T) {
	e := testEngine()

	points := e.Forecast(domain.GrowthReport{ViewsPerDay: 10}, 100, 0)

	assert.Len(t, points, 7)
}

func TestForecastFractionalRateRounds(t *testing.T) {
	e := testEngine()
	growth := domain.GrowthReport{ViewsPerDay: 33.4}

	points := e.Forecast(growth, 0, 2)

	require.Len(t, points, 2)
	assert.Equal(t, uint64(33), points[0].PredictedViews)
	assert.Equal(t, uint64(67), points[1].PredictedViews)
}
