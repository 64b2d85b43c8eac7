// ABOUTME: MCP resources exposing platform vocabularies as readable documents.
// ABOUTME: Allows AI agents to inspect the word lists behind suggestions via URI scheme.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/tagsmith/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const platformURIPrefix = "tagsmith://platform/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: platformURIPrefix + "{name}",
			Name:        "Platform vocabulary",
			Description: "Baseline words used to pad and enrich tags for a platform",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	// Parse URI: tagsmith://platform/{name}
	name, ok := strings.CutPrefix(req.Params.URI, platformURIPrefix)
	if !ok || name == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	words, found := s.generator.Vocabulary(name)
	if !found {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     ui.VocabularyMarkdown(name, words),
			},
		},
	}, nil
}
