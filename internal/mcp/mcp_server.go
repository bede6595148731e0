// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Plugtrend MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Plugtrend Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: extract_history ---
	s.AddTool(mcp.NewTool("extract_history",
		mcp.WithDescription("Walk the git history of the tracked stats file and extract the plugin's clean download series."),
		mcp.WithString("plugin", mcp.Description("Plugin name as it appears in the stats file (defaults to the configured plugin).")),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("stats_file", mcp.Description("Tracked stats file path relative to the repo root.")),
	), h.handleExtractHistory)

	// --- 2. Tool: get_releases ---
	s.AddTool(mcp.NewTool("get_releases",
		mcp.WithDescription("Segment the extracted download series into per-release statistics."),
		mcp.WithString("plugin", mcp.Description("Plugin name as it appears in the stats file.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of releases returned.")),
	), h.handleGetReleases)

	// --- 3. Tool: get_report_data ---
	s.AddTool(mcp.NewTool("get_report_data",
		mcp.WithDescription("Assemble the full report payload: timeline, active versions, rolling averages and colors."),
		mcp.WithString("plugin", mcp.Description("Plugin name as it appears in the stats file.")),
	), h.handleGetReportData)

	return s
}

// StartMCPServer starts the Plugtrend MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
