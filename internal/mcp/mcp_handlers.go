package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/plugtrend/core"
	"github.com/huangsam/plugtrend/internal/contract"
	"github.com/huangsam/plugtrend/internal/history"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// applyPlugin overrides the target plugin and keeps the derived slug in sync.
func applyPlugin(cfg *contract.Config, request mcp.CallToolRequest) {
	if p := request.GetString("plugin", ""); p != "" {
		cfg.Plugin = p
		cfg.PluginSlug = contract.PluginSlug(p)
	}
}

func (h *toolHandler) handleExtractHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyPlugin(cfg, request)
	if f := request.GetString("stats_file", ""); f != "" {
		cfg.StatsFile = f
	}

	client := contract.NewLocalGitClient()
	input := &contract.ConfigRawInput{RepoPathStr: request.GetString("repo_path", "")}
	if err := contract.ResolveRepoPath(ctx, cfg, client, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid repository: %v", err)), nil
	}

	series, err := core.ExtractSeries(ctx, cfg, client, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("extraction failed: %v", err)), nil
	}

	path := cfg.HistoryFilePath()
	if err := history.WriteFile(path, series); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to write history file: %v", err)), nil
	}

	summary := map[string]any{
		"plugin":      cfg.Plugin,
		"snapshots":   len(series),
		"historyFile": path,
	}
	jsonData, _ := json.MarshalIndent(summary, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetReleases(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyPlugin(cfg, request)
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	result, _, err := core.GetReleaseResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	if len(result.Releases) > cfg.ResultLimit {
		result.Releases = result.Releases[:cfg.ResultLimit]
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetReportData(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyPlugin(cfg, request)

	data, err := core.GetReportData(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report assembly failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(data, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
