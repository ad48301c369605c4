// Package mcp exposes the vale pipeline to AI assistants over the Model
// Context Protocol, using stdio transport via the mcp-go library.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/valemcp/valemcp/internal/application"
	"github.com/valemcp/valemcp/internal/domain"
)

// NewValeMCPServer creates an MCP server with the three vale tools
// registered. The runner and resolver are the effect boundaries; the
// install cache is shared by every gated tool.
func NewValeMCPServer(runner domain.ToolRunner, resolver domain.ConfigResolver) *server.MCPServer {
	s := server.NewMCPServer(
		"vale-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	cache := application.NewInstallCache(runner)
	checkSvc := application.NewCheckService(runner, resolver)
	syncSvc := application.NewSyncService(runner, resolver)

	registerTools(s, cache, checkSvc, syncSvc)

	return s
}
