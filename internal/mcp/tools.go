package mcp

import (
	"context"
	"encoding/json"

	"github.com/bigclaw/claw-portal/internal/config"
	"github.com/bigclaw/claw-portal/internal/dashboard"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult marshals v into a text content result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return errorResult("failed to marshal result"), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(out))},
	}, nil
}

// RegisterTools registers the dashboard tool set on the MCP server and
// returns the number of tools registered.
func RegisterTools(s *server.MCPServer, feed dashboard.Feed, pipeline *dashboard.Pipeline, scheduler *dashboard.Scheduler) int {
	tools := []struct {
		tool    mcp.Tool
		handler server.ToolHandlerFunc
	}{
		{
			mcp.NewTool("get_portfolios",
				mcp.WithDescription("Get all BigClaw portfolios with holdings, total value and return percentage."),
			),
			func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				feedData, err := feed.FetchPortfolios(ctx)
				if err != nil {
					return errorResult("portfolio data unavailable: " + err.Error()), nil
				}
				return jsonResult(feedData)
			},
		},
		{
			mcp.NewTool("get_sentiment",
				mcp.WithDescription("Get social sentiment per ticker: bullish percentage and tweet volume."),
			),
			func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				feedData, err := feed.FetchSentiment(ctx)
				if err != nil {
					return errorResult("sentiment data unavailable: " + err.Error()), nil
				}
				return jsonResult(feedData)
			},
		},
		{
			mcp.NewTool("get_news",
				mcp.WithDescription("Get recent market news articles for tracked tickers."),
			),
			func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				feedData, err := feed.FetchNews(ctx)
				if err != nil {
					return errorResult("news data unavailable: " + err.Error()), nil
				}
				return jsonResult(feedData)
			},
		},
		{
			mcp.NewTool("get_dashboard_status",
				mcp.WithDescription("Get per-section dashboard state: whether each section shows real content or a fallback, and the refresh scheduler state."),
			),
			func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				status := map[string]interface{}{
					"sections": pipeline.Store().All(),
				}
				if scheduler != nil {
					status["refresh"] = string(scheduler.State())
				}
				return jsonResult(status)
			},
		},
		{
			mcp.NewTool("refresh_dashboard",
				mcp.WithDescription("Run an immediate refresh pass over the dashboard sections, independent of the market-hours scheduler."),
			),
			func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				pipeline.Refresh(ctx)
				return jsonResult(map[string]string{"status": "ok"})
			},
		},
		{
			mcp.NewTool("get_version",
				mcp.WithDescription("Get claw-portal version and build info. Use this to verify connectivity."),
			),
			func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(map[string]string{
					"version": config.GetVersion(),
					"build":   config.GetBuild(),
					"commit":  config.GetGitCommit(),
				})
			},
		},
	}

	for _, t := range tools {
		s.AddTool(t.tool, t.handler)
	}
	return len(tools)
}
