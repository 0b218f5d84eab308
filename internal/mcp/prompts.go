package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/RedSiamese/sitter-tree-mcp/internal/service"
)

// Prompts mirror the tools for clients that surface prompts instead of
// tool calls. Prompt arguments are strings, so keywords arrive
// comma-separated or JSON-encoded.

// AddProjectPrompt registers the project_paths prompt.
func AddProjectPrompt(s *server.MCPServer, svc *service.Service) {
	prompt := mcp.NewPrompt(
		"project_paths",
		mcp.WithPromptDescription("Parse source code into an XML syntax tree projection per file."),
		mcp.WithArgument("path",
			mcp.ArgumentDescription("Source file or directory to project"),
			mcp.RequiredArgument()),
		mcp.WithArgument("mode",
			mcp.ArgumentDescription("Projection mode: 'full' or 'overview' (default: 'full')")),
	)

	s.AddPrompt(prompt, func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		path := request.Params.Arguments["path"]
		if path == "" {
			return nil, fmt.Errorf("invalid_argument: path argument is required")
		}
		mode := request.Params.Arguments["mode"]
		if mode == "" {
			mode = "full"
		}

		results, err := svc.ProjectPaths(path, mode)
		if err != nil {
			return nil, err
		}
		text, err := encodeResultMap(results)
		if err != nil {
			return nil, err
		}
		return mcp.NewGetPromptResult(
			"Syntax tree projection",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent("Syntax tree projection:\n"+text)),
			},
		), nil
	})
}

// AddSearchPrompt registers the search_paths prompt.
func AddSearchPrompt(s *server.MCPServer, svc *service.Service) {
	prompt := mcp.NewPrompt(
		"search_paths",
		mcp.WithPromptDescription("Search source code for keywords and return the syntax tree branches leading to matches."),
		mcp.WithArgument("path",
			mcp.ArgumentDescription("Source file or directory to search"),
			mcp.RequiredArgument()),
		mcp.WithArgument("keywords",
			mcp.ArgumentDescription("Comma-separated keywords, e.g. 'factorial' or 'Calculator, getValue'"),
			mcp.RequiredArgument()),
	)

	s.AddPrompt(prompt, func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		path := request.Params.Arguments["path"]
		if path == "" {
			return nil, fmt.Errorf("invalid_argument: path argument is required")
		}
		keywords := splitKeywords(request.Params.Arguments["keywords"])
		if len(keywords) == 0 {
			return nil, fmt.Errorf("invalid_argument: keywords argument is required")
		}

		results, err := svc.SearchPaths(path, keywords)
		if err != nil {
			return nil, err
		}
		text, err := encodeResultMap(results)
		if err != nil {
			return nil, err
		}
		return mcp.NewGetPromptResult(
			"Keyword search results",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent("Matching syntax tree branches:\n"+text)),
			},
		), nil
	})
}
