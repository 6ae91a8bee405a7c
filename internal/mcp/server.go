// ABOUTME: MCP server implementation for chronicle
// ABOUTME: Provides tools for AI agents to read and manage diary entries

package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/chroniclehq/chronicle/internal/session"
)

// Server wraps the MCP server with chronicle-specific context.
type Server struct {
	mcpServer *server.MCPServer
	journal   *session.Journal
}

// NewServer creates a new MCP server instance over an open journal.
func NewServer(journal *session.Journal) *Server {
	s := &Server{journal: journal}

	s.mcpServer = server.NewMCPServer(
		"chronicle",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()
	return s
}

// ServeStdio starts the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// registerTools is implemented in tools.go
