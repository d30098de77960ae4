package mcpserver

import (
	"context"

	"github.com/archish9/youtube-mcp/internal/domain"
	"github.com/archish9/youtube-mcp/internal/service/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type VideoInfoInput struct {
	VideoID string `json:"video_id" jsonschema:"YouTube video ID or full URL (e.g. 'dQw4w9WgXcQ' or 'https://youtube.com/watch?v=dQw4w9WgXcQ')"`
}

type VideoInfoOutput struct {
	Video *domain.VideoInfo `json:"video"`
}

type TranscriptInput struct {
	VideoID  string `json:"video_id" jsonschema:"YouTube video ID or full URL"`
	Language string `json:"language,omitempty" jsonschema:"Language code (e.g. 'en', 'es', 'fr'). Default: 'en'"`
}

type TranscriptOutput struct {
	Transcript *domain.Transcript `json:"transcript"`
}

type CommentsInput struct {
	VideoID    string `json:"video_id" jsonschema:"YouTube video ID or full URL"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"Maximum number of comments to retrieve (1-100, default 20)"`
	Order      string `json:"order,omitempty" jsonschema:"Order comments by: time, relevance (default relevance)"`
}

type CommentsOutput struct {
	VideoID       string           `json:"video_id"`
	TotalComments int              `json:"total_comments"`
	Comments      []domain.Comment `json:"comments"`
}

type SearchInput struct {
	Query      string `json:"query" jsonschema:"Search query"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"Maximum number of results (1-50, default 10)"`
	Order      string `json:"order,omitempty" jsonschema:"Sort order: date, rating, relevance, title, viewCount (default relevance)"`
}

type SearchOutput struct {
	Query        string                `json:"query"`
	TotalResults int                   `json:"total_results"`
	Videos       []domain.SearchResult `json:"videos"`
}

type TrendingInput struct {
	RegionCode string `json:"region_code,omitempty" jsonschema:"ISO 3166-1 alpha-2 country code (e.g. 'US', 'GB', 'IN'). Default: 'US'"`
	CategoryID string `json:"category_id,omitempty" jsonschema:"Video category ID (e.g. '10' for Music, '20' for Gaming)"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"Maximum number of results (1-50, default 10)"`
}

type TrendingOutput struct {
	Region      string                 `json:"region"`
	TotalVideos int                    `json:"total_videos"`
	Videos      []domain.TrendingVideo `json:"videos"`
}

type PlaylistInput struct {
	PlaylistID string `json:"playlist_id" jsonschema:"YouTube playlist ID"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"Maximum number of videos to retrieve (1-50, default 20)"`
}

type PlaylistOutput struct {
	Playlist *domain.PlaylistInfo `json:"playlist"`
}

func registerVideoTools(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_video_info",
		Description: "Get detailed metadata about a YouTube video including title, description, views, likes, duration, and channel info",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input VideoInfoInput) (*mcp.CallToolResult, VideoInfoOutput, error) {
		info, err := deps.YouTube.Video(ctx, input.VideoID)
		if err != nil {
			return nil, VideoInfoOutput{}, err
		}
		return nil, VideoInfoOutput{Video: info}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_video_transcript",
		Description: "Get the transcript/captions of a YouTube video. Returns timestamped text.",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TranscriptInput) (*mcp.CallToolResult, TranscriptOutput, error) {
		id := youtube.ExtractVideoID(input.VideoID)
		tr, err := deps.Transcript.Fetch(ctx, id, input.Language)
		if err != nil {
			deps.Logger.Warn("Transcript fetch failed", zap.String("videoId", id), zap.Error(err))
			return nil, TranscriptOutput{}, err
		}
		return nil, TranscriptOutput{Transcript: tr}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_video_comments",
		Description: "Get top comments from a YouTube video",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CommentsInput) (*mcp.CallToolResult, CommentsOutput, error) {
		comments, err := deps.YouTube.Comments(ctx, input.VideoID, input.MaxResults, input.Order)
		if err != nil {
			return nil, CommentsOutput{}, err
		}
		return nil, CommentsOutput{
			VideoID:       youtube.ExtractVideoID(input.VideoID),
			TotalComments: len(comments),
			Comments:      comments,
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_videos",
		Description: "Search for YouTube videos by keyword",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		videos, err := deps.YouTube.Search(ctx, input.Query, input.MaxResults, input.Order)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		return nil, SearchOutput{
			Query:        input.Query,
			TotalResults: len(videos),
			Videos:       videos,
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_trending_videos",
		Description: "Get trending videos in a specific region",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TrendingInput) (*mcp.CallToolResult, TrendingOutput, error) {
		region := input.RegionCode
		if region == "" {
			region = "US"
		}
		videos, err := deps.YouTube.Trending(ctx, region, input.CategoryID, input.MaxResults)
		if err != nil {
			return nil, TrendingOutput{}, err
		}
		return nil, TrendingOutput{
			Region:      region,
			TotalVideos: len(videos),
			Videos:      videos,
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_playlist_info",
		Description: "Get information about a YouTube playlist and its videos",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input PlaylistInput) (*mcp.CallToolResult, PlaylistOutput, error) {
		pl, err := deps.YouTube.Playlist(ctx, input.PlaylistID, input.MaxResults)
		if err != nil {
			return nil, PlaylistOutput{}, err
		}
		return nil, PlaylistOutput{Playlist: pl}, nil
	})
}
