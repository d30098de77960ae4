package analytics

import (
	"math"

	"github.com/archish9/youtube-mcp/internal/domain"
)

// Forecast projects future view totals by linear extrapolation of the
// fitted daily rate. Deliberately not compounding: a logistic or
// exponential model would be a design upgrade, not an assumption to bake
// in silently. Non-positive rates plateau at the current total; predictions
// never go below zero.
func (e *Engine) Forecast(growth domain.GrowthReport, currentViews uint64, daysAhead int) []domain.ForecastPoint {
	if daysAhead <= 0 {
		daysAhead = e.cfg.DefaultForecastDays
	}

	viewsPerDay := growth.ViewsPerDay
	if viewsPerDay < 0 {
		viewsPerDay = 0
	}

	points := make([]domain.ForecastPoint, 0, daysAhead)
	for d := 1; d <= daysAhead; d++ {
		predicted := float64(currentViews) + viewsPerDay*float64(d)
		points = append(points, domain.ForecastPoint{
			DaysFromNow:    d,
			PredictedViews: uint64(math.Round(predicted)),
		})
	}

	return points
}
