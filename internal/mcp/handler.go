// Package mcp exposes the dashboard's data over the Model Context Protocol
// so agent clients can query portfolio state without scraping HTML.
package mcp

import (
	"net/http"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/dashboard"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
}

// NewHandler creates a new MCP handler with the dashboard tool set registered.
func NewHandler(feed dashboard.Feed, pipeline *dashboard.Pipeline, scheduler *dashboard.Scheduler, logger *common.Logger) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		"claw-portal",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	toolCount := RegisterTools(mcpSrv, feed, pipeline, scheduler)

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	if logger != nil {
		logger.Info().
			Int("tools", toolCount).
			Msg("MCP handler initialized")
	}

	return &Handler{
		streamable: streamable,
		logger:     logger,
	}
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
