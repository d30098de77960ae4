// Package mcpserver exposes the YouTube tools over the Model Context
// Protocol. Handlers stay thin: argument normalization, fan-out fetches,
// and delegation to the analytics/benchmark/report engines.
package mcpserver

import (
	"github.com/archish9/youtube-mcp/internal/analytics"
	"github.com/archish9/youtube-mcp/internal/benchmark"
	"github.com/archish9/youtube-mcp/internal/report"
	"github.com/archish9/youtube-mcp/internal/service/transcript"
	"github.com/archish9/youtube-mcp/internal/service/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Deps bundles the collaborators the tool handlers need. Everything is
// injected; no handler reaches for process-wide state.
type Deps struct {
	YouTube    *youtube.Service
	Transcript *transcript.Service
	Analytics  *analytics.Engine
	Benchmark  *benchmark.Engine
	Reports    *report.Generator
	Logger     *zap.Logger
}

// RegisterTools registers every tool on the given MCP server.
func RegisterTools(server *mcp.Server, deps *Deps) {
	registerVideoTools(server, deps)
	registerAnalyticsTools(server, deps)
	registerChannelTools(server, deps)
	registerReportTools(server, deps)
}

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{ReadOnlyHint: true}
}
