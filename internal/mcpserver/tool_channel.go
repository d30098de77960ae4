package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/archish9/youtube-mcp/internal/domain"
	apperrors "github.com/archish9/youtube-mcp/pkg/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type ChannelInfoInput struct {
	ChannelID string `json:"channel_id" jsonschema:"Channel ID, /channel/ URL, or @handle"`
}

type ChannelVideosInput struct {
	ChannelID  string `json:"channel_id" jsonschema:"Channel ID, /channel/ URL, or @handle"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"Maximum videos to return (default 10, max 50)"`
}

type ChannelVideosOutput struct {
	ChannelID string                `json:"channel_id"`
	Videos    []domain.SearchResult `json:"videos"`
	Count     int                   `json:"count"`
}

type CompareChannelsInput struct {
	ChannelIDs []string `json:"channel_ids" jsonschema:"Two or more channel IDs or @handles to compare"`
}

type CompareChannelsOutput struct {
	Ranking   []domain.RankedChannel `json:"ranking_by_subscribers"`
	Omissions []string               `json:"omissions,omitempty"`
}

type ContentStrategyInput struct {
	ChannelID string `json:"channel_id" jsonschema:"Channel ID, /channel/ URL, or @handle"`
}

type BenchmarkInput struct {
	ChannelID     string   `json:"channel_id" jsonschema:"Target channel ID or @handle"`
	CompetitorIDs []string `json:"competitor_ids" jsonschema:"One or more competitor channel IDs or @handles"`
}

type BenchmarkOutput struct {
	Report    *domain.BenchmarkReport `json:"report"`
	Omissions []string                `json:"omissions,omitempty"`
}

type AdvantagesInput struct {
	ChannelID     string   `json:"channel_id" jsonschema:"Target channel ID or @handle"`
	CompetitorIDs []string `json:"competitor_ids" jsonschema:"One or more competitor channel IDs or @handles"`
}

type AdvantagesOutput struct {
	Position  *domain.CompetitivePosition `json:"position"`
	Omissions []string                    `json:"omissions,omitempty"`
}

type MarketShareInput struct {
	ChannelIDs []string `json:"channel_ids" jsonschema:"Two or more channel IDs or @handles defining the market"`
}

type MarketShareOutput struct {
	Report    *domain.MarketShareReport `json:"report"`
	Omissions []string                  `json:"omissions,omitempty"`
}

func registerChannelTools(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_channel_info",
		Description: "Get metadata and statistics for a YouTube channel by ID or @handle",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ChannelInfoInput) (*mcp.CallToolResult, domain.ChannelInfo, error) {
		info, err := deps.YouTube.Channel(ctx, input.ChannelID)
		if err != nil {
			return nil, domain.ChannelInfo{}, err
		}
		return nil, *info, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_channel_videos",
		Description: "List a channel's most recent uploads",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ChannelVideosInput) (*mcp.CallToolResult, ChannelVideosOutput, error) {
		videos, err := deps.YouTube.ChannelVideos(ctx, input.ChannelID, input.MaxResults)
		if err != nil {
			return nil, ChannelVideosOutput{}, err
		}
		return nil, ChannelVideosOutput{
			ChannelID: input.ChannelID,
			Videos:    videos,
			Count:     len(videos),
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare_channels",
		Description: "Compare channels side by side, ranked by subscriber count",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CompareChannelsInput) (*mcp.CallToolResult, CompareChannelsOutput, error) {
		snapshots, omissions, err := fetchChannelSet(ctx, deps, input.ChannelIDs, 2)
		if err != nil {
			return nil, CompareChannelsOutput{}, err
		}
		ranking, err := deps.Benchmark.CompareChannels(snapshots)
		if err != nil {
			return nil, CompareChannelsOutput{}, err
		}
		return nil, CompareChannelsOutput{Ranking: ranking, Omissions: omissions}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_content_strategy",
		Description: "Estimate a channel's posting cadence from its video count and age",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ContentStrategyInput) (*mcp.CallToolResult, domain.ContentStrategyReport, error) {
		snap, err := deps.YouTube.ChannelSnapshot(ctx, input.ChannelID)
		if err != nil {
			return nil, domain.ContentStrategyReport{}, err
		}
		return nil, deps.Benchmark.AnalyzeContentStrategy(*snap, time.Now()), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "benchmark_performance",
		Description: "Benchmark a channel against competitors with subscriber and engagement ranks",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input BenchmarkInput) (*mcp.CallToolResult, BenchmarkOutput, error) {
		target, err := deps.YouTube.ChannelSnapshot(ctx, input.ChannelID)
		if err != nil {
			return nil, BenchmarkOutput{}, err
		}
		competitors, omissions, err := fetchChannelSet(ctx, deps, input.CompetitorIDs, 1)
		if err != nil {
			return nil, BenchmarkOutput{}, err
		}
		report, err := deps.Benchmark.BenchmarkPerformance(*target, competitors)
		if err != nil {
			return nil, BenchmarkOutput{}, err
		}
		return nil, BenchmarkOutput{Report: report, Omissions: omissions}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "identify_competitive_advantages",
		Description: "Identify the metrics a channel is strictly best or worst at among competitors",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input AdvantagesInput) (*mcp.CallToolResult, AdvantagesOutput, error) {
		target, err := deps.YouTube.ChannelSnapshot(ctx, input.ChannelID)
		if err != nil {
			return nil, AdvantagesOutput{}, err
		}
		competitors, omissions, err := fetchChannelSet(ctx, deps, input.CompetitorIDs, 1)
		if err != nil {
			return nil, AdvantagesOutput{}, err
		}
		position, err := deps.Benchmark.CompetitiveAdvantages(*target, competitors)
		if err != nil {
			return nil, AdvantagesOutput{}, err
		}
		return nil, AdvantagesOutput{Position: position, Omissions: omissions}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "track_market_share",
		Description: "Compute each channel's subscriber and view share within a set of channels",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input MarketShareInput) (*mcp.CallToolResult, MarketShareOutput, error) {
		snapshots, omissions, err := fetchChannelSet(ctx, deps, input.ChannelIDs, 2)
		if err != nil {
			return nil, MarketShareOutput{}, err
		}
		report, err := deps.Benchmark.MarketShare(snapshots)
		if err != nil {
			return nil, MarketShareOutput{}, err
		}
		return nil, MarketShareOutput{Report: report, Omissions: omissions}, nil
	})
}

// fetchChannelSet resolves a set of channels concurrently, itemizing failures
// as omissions rather than failing the whole request. The request errors only
// when fewer than minFound channels resolve.
func fetchChannelSet(ctx context.Context, deps *Deps, channelIDs []string, minFound int) ([]domain.ChannelSnapshot, []string, error) {
	if len(channelIDs) < minFound {
		return nil, nil, apperrors.NewValidationError(
			fmt.Sprintf("at least %d channels are required", minFound), "channel_ids", len(channelIDs))
	}

	results := deps.YouTube.ChannelSnapshots(ctx, channelIDs)
	snapshots := make([]domain.ChannelSnapshot, 0, len(results))
	var omissions []string
	for _, r := range results {
		if r.Err != nil {
			deps.Logger.Warn("Skipping channel in comparison",
				zap.String("channelId", r.ChannelID), zap.Error(r.Err))
			omissions = append(omissions, fmt.Sprintf("%s: %v", r.ChannelID, r.Err))
			continue
		}
		snapshots = append(snapshots, *r.Snapshot)
	}

	if len(snapshots) < minFound {
		return nil, nil, apperrors.NewValidationError(
			fmt.Sprintf("only %d of %d channels could be fetched (need %d)",
				len(snapshots), len(channelIDs), minFound), "channel_ids", omissions)
	}

	return snapshots, omissions, nil
}
