package analytics

import (
	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/archish9/youtube-mcp/internal/util"
	"go.uber.org/zap"
)

// DetectViralMoments scans adjacent snapshot pairs for intervals whose view
// velocity exceeds the configured threshold. The returned moments are
// chronological; a flat series yields none.
//
// The synthesized curve is smooth, so spikes only appear when total growth
// over the window is large; the detector is only as good as the synthesis.
func (e *Engine) DetectViralMoments(series domain.SynthesizedSeries) []domain.ViralMoment {
	moments := make([]domain.ViralMoment, 0)

	for i := 1; i < len(series); i++ {
		cur, next := series[i-1], series[i]
		hours := next.Timestamp.Sub(cur.Timestamp).Hours()
		if hours <= 0 {
			continue
		}

		viewsPerHour := (float64(next.Views) - float64(cur.Views)) / hours
		if viewsPerHour > e.cfg.ViralThresholdViewsPerHour {
			moments = append(moments, domain.ViralMoment{
				Timestamp:          next.Timestamp,
				ViewsPerHour:       util.Round1(viewsPerHour),
				TotalViewsAtMoment: next.Views,
			})
		}
	}

	if len(moments) > 0 {
		e.logger.Debug("Viral moments detected",
			zap.Int("count", len(moments)),
			zap.Float64("threshold", e.cfg.ViralThresholdViewsPerHour))
	}

	return moments
}
