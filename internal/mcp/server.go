// Package mcp exposes the projection operations over the Model Context
// Protocol: a stdio server with project_paths and search_paths as both
// tools and prompts.
package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/RedSiamese/sitter-tree-mcp/internal/service"
	"github.com/RedSiamese/sitter-tree-mcp/internal/treecache"
)

// Server manages the MCP server lifecycle.
type Server struct {
	mcp     *server.MCPServer
	watcher *treecache.Watcher
}

// NewServer creates an MCP server over the given service. watcher is
// optional; when set it is started alongside the server and stopped on
// shutdown.
func NewServer(version string, svc *service.Service, watcher *treecache.Watcher) *Server {
	mcpServer := server.NewMCPServer(
		"sitter-tree",
		version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
	)

	AddProjectTool(mcpServer, svc)
	AddSearchTool(mcpServer, svc)
	AddProjectPrompt(mcpServer, svc)
	AddSearchPrompt(mcpServer, svc)

	return &Server{mcp: mcpServer, watcher: watcher}
}

// Serve starts the MCP server on stdio and blocks until shutdown.
// Logging goes to stderr throughout; stdout belongs to the protocol.
func (s *Server) Serve(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Start(ctx)
		defer s.watcher.Stop()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
