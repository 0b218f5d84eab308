package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/RedSiamese/sitter-tree-mcp/internal/service"
)

// AddProjectTool registers the project_paths tool with an MCP server.
// Registration functions are composable so tests can assemble a server
// with any subset of the surface.
func AddProjectTool(s *server.MCPServer, svc *service.Service) {
	tool := mcp.NewTool(
		"project_paths",
		mcp.WithDescription("Parse source code into a syntax tree and return an XML projection per file. "+
			"Mode 'full' emits the whole tree; 'overview' keeps only definitions and comments. "+
			"Accepts a single file or a directory (processed recursively)."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Source file or directory to project")),
		mcp.WithString("mode",
			mcp.Description("Projection mode: 'full' or 'overview' (default: 'full')"),
			mcp.Enum("full", "overview")),
	)

	s.AddTool(tool, createProjectHandler(svc))
}

// AddSearchTool registers the search_paths tool with an MCP server.
func AddSearchTool(s *server.MCPServer, svc *service.Service) {
	tool := mcp.NewTool(
		"search_paths",
		mcp.WithDescription("Search source code for one or more keywords (class, struct, member, "+
			"function or variable names) and return per file the syntax tree branches leading to "+
			"matches, with everything else pruned. Each keyword is a single name; expressions "+
			"like 'func(' are not supported."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Source file or directory to search")),
		mcp.WithArray("keywords",
			mcp.Required(),
			mcp.Description("Keywords to search for, e.g. [\"factorial\"] or [\"Calculator\", \"getValue\"]")),
	)

	s.AddTool(tool, createSearchHandler(svc))
}

func createProjectHandler(svc *service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		path, ok := stringArg(args, "path")
		if !ok {
			return mcp.NewToolResultError("invalid_argument: path parameter is required"), nil
		}
		mode := "full"
		if m, ok := stringArg(args, "mode"); ok {
			mode = m
		}

		results, err := svc.ProjectPaths(path, mode)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return resultMapText(results)
	}
}

func createSearchHandler(svc *service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		path, ok := stringArg(args, "path")
		if !ok {
			return mcp.NewToolResultError("invalid_argument: path parameter is required"), nil
		}
		keywords := stringSliceArg(args, "keywords")
		if len(keywords) == 0 {
			return mcp.NewToolResultError("invalid_argument: keywords parameter is required and must be a non-empty list"), nil
		}

		results, err := svc.SearchPaths(path, keywords)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return resultMapText(results)
	}
}

// resultMapText encodes a path -> projection map as indented JSON with
// HTML escaping off, so the XML payloads stay readable.
func resultMapText(results map[string]string) (*mcp.CallToolResult, error) {
	text, err := encodeResultMap(results)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result map: %w", err)
	}
	return mcp.NewToolResultText(text), nil
}

func encodeResultMap(results map[string]string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return "", err
	}
	return buf.String(), nil
}
