package domain

import "time"

// Shapes returned by the thin pass-through tools. These mirror the Data API
// responses with counters normalized to integers and formatted variants for
// human display.

type VideoInfo struct {
	VideoID           string    `json:"video_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ChannelID         string    `json:"channel_id"`
	ChannelTitle      string    `json:"channel_title"`
	PublishedAt       time.Time `json:"published_at"`
	Duration          string    `json:"duration"`
	DurationRaw       string    `json:"duration_raw"`
	Views             uint64    `json:"views"`
	ViewsFormatted    string    `json:"views_formatted"`
	Likes             uint64    `json:"likes"`
	LikesFormatted    string    `json:"likes_formatted"`
	Comments          uint64    `json:"comments"`
	CommentsFormatted string    `json:"comments_formatted"`
	Tags              []string  `json:"tags,omitempty"`
	CategoryID        string    `json:"category_id"`
	Thumbnail         string    `json:"thumbnail"`
	URL               string    `json:"url"`
}

type ChannelInfo struct {
	ChannelID            string    `json:"channel_id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	CustomURL            string    `json:"custom_url,omitempty"`
	PublishedAt          time.Time `json:"published_at"`
	Subscribers          uint64    `json:"subscribers"`
	SubscribersFormatted string    `json:"subscribers_formatted"`
	TotalViews           uint64    `json:"total_views"`
	TotalViewsFormatted  string    `json:"total_views_formatted"`
	VideoCount           uint64    `json:"video_count"`
	Thumbnail            string    `json:"thumbnail"`
	Country              string    `json:"country"`
	URL                  string    `json:"url"`
}

type SearchResult struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelID    string    `json:"channel_id"`
	ChannelTitle string    `json:"channel_title"`
	PublishedAt  time.Time `json:"published_at"`
	Thumbnail    string    `json:"thumbnail"`
	URL          string    `json:"url"`
}

type TrendingVideo struct {
	SearchResult
	Views          uint64 `json:"views"`
	ViewsFormatted string `json:"views_formatted"`
	Likes          uint64 `json:"likes"`
}

type Comment struct {
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	Likes       uint64    `json:"likes"`
	PublishedAt time.Time `json:"published_at"`
	ReplyCount  int64     `json:"reply_count"`
}

type PlaylistItem struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelTitle string    `json:"channel_title"`
	PublishedAt  time.Time `json:"published_at"`
	Position     int64     `json:"position"`
	Thumbnail    string    `json:"thumbnail"`
	URL          string    `json:"url"`
}

type PlaylistInfo struct {
	PlaylistID      string         `json:"playlist_id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	ChannelID       string         `json:"channel_id"`
	ChannelTitle    string         `json:"channel_title"`
	TotalVideos     int64          `json:"total_videos"`
	VideosRetrieved int            `json:"videos_retrieved"`
	Videos          []PlaylistItem `json:"videos"`
}

type TranscriptSegment struct {
	Timestamp        string  `json:"timestamp"`
	TimestampSeconds float64 `json:"timestamp_seconds"`
	Duration         float64 `json:"duration"`
	Text             string  `json:"text"`
}

type Transcript struct {
	VideoID      string              `json:"video_id"`
	LanguageCode string              `json:"language_code"`
	IsGenerated  bool                `json:"is_generated"`
	Segments     []TranscriptSegment `json:"transcript"`
	FullText     string              `json:"full_text"`
}
