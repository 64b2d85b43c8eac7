// ABOUTME: MCP server for tagsmith integration with AI agents.
// ABOUTME: Provides tools, resources, and prompts for tag suggestion.

package mcp

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/tagsmith/internal/config"
	"github.com/harper/tagsmith/internal/tags"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server    *mcp.Server
	generator *tags.Generator
	cfg       *config.Config
	logger    *log.Logger
}

func NewServer(generator *tags.Generator, cfg *config.Config, logger *log.Logger, version string) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		generator: generator,
		cfg:       cfg,
		logger:    logger.WithPrefix("mcp"),
	}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "tagsmith",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving on stdio", "platforms", len(s.generator.Platforms()))
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// logged wraps a tool handler so each call is logged with a correlation id.
func (s *Server) logged(name string, h mcp.ToolHandler) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := uuid.NewString()
		s.logger.Info("tool call", "tool", name, "call", callID)

		res, err := h(ctx, req)
		switch {
		case err != nil:
			s.logger.Error("tool failed", "tool", name, "call", callID, "err", err)
		case res != nil && res.IsError:
			s.logger.Warn("tool rejected input", "tool", name, "call", callID)
		default:
			s.logger.Debug("tool done", "tool", name, "call", callID)
		}
		return res, err
	}
}
