// ABOUTME: MCP server setup for splitfit.
// ABOUTME: Wires the repository, stats engine, and template engine into MCP tools.
package mcp

import (
	"context"

	"github.com/splitfitapp/splitfit/internal/auth"
	"github.com/splitfitapp/splitfit/internal/repo"
	"github.com/splitfitapp/splitfit/internal/routine"
	"github.com/splitfitapp/splitfit/internal/stats"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with splitfit's engines.
type Server struct {
	mcpServer *mcp.Server
	repo      *repo.Repo
	identity  auth.Identity
	stats     *stats.Engine
	routines  *routine.Engine
}

// NewServer creates a new MCP server over the given repository and
// identity provider.
func NewServer(r *repo.Repo, identity auth.Identity, catalog routine.Catalog) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "splitfit",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      r,
		identity:  identity,
		stats:     stats.NewEngine(r, identity),
		routines:  routine.NewEngine(catalog, r, identity),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
