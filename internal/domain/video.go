package domain

import "time"

// MetricSnapshot is a point-in-time set of view/like/comment counters.
// Within one series values never decrease across increasing timestamps.
type MetricSnapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Views     uint64    `json:"views"`
	Likes     uint64    `json:"likes"`
	Comments  uint64    `json:"comments"`
}

// VideoContext is the single live data point the analytics pipeline works
// from. It is fetched fresh per tool call and never cached across calls.
type VideoContext struct {
	VideoID         string         `json:"video_id"`
	Title           string         `json:"title"`
	ChannelID       string         `json:"channel_id"`
	ChannelTitle    string         `json:"channel_title"`
	PublishedAt     time.Time      `json:"published_at"`
	DurationSeconds int64          `json:"duration_seconds"`
	Current         MetricSnapshot `json:"current"`
}

// SynthesizedSeries is an invented historical sequence of snapshots anchored
// to one true data point. The YouTube Data API exposes no per-video history
// without owner access, so trend analytics run over this synthetic series.
type SynthesizedSeries []MetricSnapshot

func (s SynthesizedSeries) First() MetricSnapshot {
	if len(s) == 0 {
		return MetricSnapshot{}
	}
	return s[0]
}

func (s SynthesizedSeries) Last() MetricSnapshot {
	if len(s) == 0 {
		return MetricSnapshot{}
	}
	return s[len(s)-1]
}

// PeriodDays is the span of the series in fractional days.
func (s SynthesizedSeries) PeriodDays() float64 {
	if len(s) < 2 {
		return 0
	}
	return s.Last().Timestamp.Sub(s.First().Timestamp).Hours() / 24
}
