package mcpserver

import (
	"context"

	"github.com/archish9/youtube-mcp/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type VideoReportInput struct {
	VideoID string `json:"video_id" jsonschema:"YouTube video ID or full URL"`
}

type ChannelReportInput struct {
	ChannelID     string `json:"channel_id" jsonschema:"Channel ID, /channel/ URL, or @handle"`
	PeriodDays    int    `json:"period_days,omitempty" jsonschema:"Reporting window in days (default 7)"`
	IncludeVideos bool   `json:"include_videos,omitempty" jsonschema:"Include the per-video breakdown in the report"`
}

func registerReportTools(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_video_report",
		Description: "Generate a full metadata and performance report for a single video",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input VideoReportInput) (*mcp.CallToolResult, report.VideoReport, error) {
		rep, err := deps.Reports.GenerateVideoReport(ctx, input.VideoID)
		if err != nil {
			return nil, report.VideoReport{}, err
		}
		return nil, *rep, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_channel_report",
		Description: "Generate a channel activity report covering recent uploads, with top performers and period totals",
		Annotations: readOnly(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ChannelReportInput) (*mcp.CallToolResult, report.ChannelReport, error) {
		rep, err := deps.Reports.GenerateChannelReport(ctx, input.ChannelID, input.PeriodDays, input.IncludeVideos)
		if err != nil {
			return nil, report.ChannelReport{}, err
		}
		return nil, *rep, nil
	})
}
