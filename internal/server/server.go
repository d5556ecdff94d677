// Package server wires the tool registry into an MCP server instance.
// No business logic lives here, only protocol adaptation: registry schemas
// become MCP tool declarations and tool results become text payloads.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/finchline/finchline/internal/config"
	"github.com/finchline/finchline/internal/schema"
	"github.com/finchline/finchline/internal/tools"
)

const instructions = "Tools for reading and writing Twitter/X: post and search tweets, " +
	"inspect and update profiles, manage follows, and work with lists. " +
	"Every result is plain text ready for display."

// New builds the MCP server with every registry tool registered.
func New(cfg *config.Config, reg *tools.Registry) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	for _, t := range reg.All() {
		s.AddTool(
			mcp.NewToolWithRawSchema(t.Name(), t.Description(), t.Parameters()),
			handler(t),
		)
	}
	return s
}

// handler adapts a tool to the MCP calling convention. Failures become
// error-flagged text results; the transport never sees a raw Go error, so
// clients always receive a structured response.
func handler(t schema.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := t.Execute(ctx, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}
