package domain

import "time"

// ChannelSnapshot is the point-in-time channel statistics used for
// cross-channel benchmarking. No time dimension exists at channel
// granularity, so all comparisons are cross-sectional.
type ChannelSnapshot struct {
	ChannelID   string    `json:"channel_id"`
	Title       string    `json:"title"`
	Subscribers uint64    `json:"subscribers"`
	TotalViews  uint64    `json:"total_views"`
	VideoCount  uint64    `json:"video_count"`
	Country     string    `json:"country"`
	PublishedAt time.Time `json:"published_at"`
}

// AvgViewsPerVideo is total views spread over the upload count, with a
// floor of one video so empty channels divide cleanly.
func (c ChannelSnapshot) AvgViewsPerVideo() float64 {
	videos := c.VideoCount
	if videos == 0 {
		videos = 1
	}
	return float64(c.TotalViews) / float64(videos)
}

// EngagementScore is average views per video relative to subscriber count,
// the only engagement proxy available at channel granularity; the API
// exposes no per-channel like/comment totals.
func (c ChannelSnapshot) EngagementScore() float64 {
	subs := c.Subscribers
	if subs == 0 {
		subs = 1
	}
	return c.AvgViewsPerVideo() / float64(subs)
}
