// ABOUTME: MCP server setup for the tracker store.
// ABOUTME: Wraps MCP server with store access and the AI dietitian.
package mcp

import (
	"context"

	"github.com/jamiekretzschmar/gastrocare/internal/assistant"
	"github.com/jamiekretzschmar/gastrocare/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	store     *store.Store
	dietitian *assistant.Dietitian
}

// NewServer creates a new MCP server with the given store. The dietitian
// may be nil when no API key is configured; the ask tool then returns
// setup instructions.
func NewServer(s *store.Store, d *assistant.Dietitian) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gastrocare",
			Version: "1.0.0",
		},
		nil,
	)

	srv := &Server{
		mcpServer: mcpServer,
		store:     s,
		dietitian: d,
	}

	srv.registerTools()
	srv.registerResources()

	return srv, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
