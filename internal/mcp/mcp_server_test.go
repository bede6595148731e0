package mcp_test

import (
	"context"
	"testing"

	"github.com/huangsam/plugtrend/internal/contract"
	mcp_internal "github.com/huangsam/plugtrend/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerTools(t *testing.T) {
	baseCfg := &contract.Config{
		Plugin:      "My Plugin",
		PluginSlug:  "my-plugin",
		DataDir:     t.TempDir(),
		ResultLimit: contract.DefaultResultLimit,
	}

	// A nil manager is fine here; these cases never reach the cache.
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("tools are registered", func(t *testing.T) {
		for _, name := range []string{"extract_history", "get_releases", "get_report_data"} {
			assert.NotNil(t, s.GetTool(name), "Tool %s should exist", name)
		}
	})

	t.Run("get_releases without history file", func(t *testing.T) {
		tool := s.GetTool("get_releases")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_releases",
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "history file not found")
	})

	t.Run("get_report_data without history file", func(t *testing.T) {
		tool := s.GetTool("get_report_data")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_report_data",
				Arguments: map[string]any{
					"plugin": "Other Plugin",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "history file not found")
	})

	t.Run("extract_history with invalid repo", func(t *testing.T) {
		tool := s.GetTool("extract_history")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "extract_history",
				Arguments: map[string]any{
					"repo_path": t.TempDir(), // not a git repository
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}
