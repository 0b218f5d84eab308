package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RedSiamese/sitter-tree-mcp/internal/mcp"
	"github.com/RedSiamese/sitter-tree-mcp/internal/treecache"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for syntax tree projection",
	Long: `Start the Model Context Protocol (MCP) server that lets LLM-powered
coding assistants project and search source code syntax trees.

The MCP server:
- Exposes project_paths and search_paths as tools and prompts
- Caches parse trees keyed by file modification time
- Communicates via stdio (standard MCP transport)

Example:
  sitter-tree-mcp mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	svc, cache, resolver, err := newService()
	if err != nil {
		return err
	}

	var watcher *treecache.Watcher
	if cfg.Watch.Enabled {
		roots := cfg.Watch.Paths
		if len(roots) == 0 {
			roots = []string{"."}
		}
		debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
		watcher, err = treecache.NewWatcher(cache, roots, debounce, resolver.Ignored)
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
	}

	server := mcp.NewServer(Version, svc, watcher)
	if err := server.Serve(context.Background()); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
