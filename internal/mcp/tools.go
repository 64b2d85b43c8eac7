// ABOUTME: MCP tools for tag generation, formatting and similarity.
// ABOUTME: Maps CLI functionality to MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/tagsmith/internal/models"
	"github.com/harper/tagsmith/internal/tags"
	"github.com/harper/tagsmith/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GenerateResult is the JSON payload returned by generate_tags.
type GenerateResult struct {
	Topic    string       `json:"topic"`
	Platform string       `json:"platform"`
	Resolved string       `json:"resolved_platform"`
	Tags     []string     `json:"tags"`
	Sources  []models.Tag `json:"sources,omitempty"`
	Copy     string       `json:"copy"`
}

type platformEntry struct {
	Name    string   `json:"name"`
	Words   []string `json:"words"`
	Default bool     `json:"default"`
}

func (s *Server) registerTools() {
	// generate_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "generate_tags",
		Description: "Suggest hashtag-style tags for a topic on a platform",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"topic": {"type": "string", "description": "Topic or comma/space separated keywords"},
				"platform": {"type": "string", "description": "Platform key, e.g. youtube, etsy, tiktok"},
				"hash_prefix": {"type": "boolean", "description": "Prefix tags with # in the copy line"},
				"separator": {"type": "string", "description": "Separator for the copy line"},
				"explain": {"type": "boolean", "description": "Include which pass produced each tag", "default": false}
			},
			"required": ["topic"]
		}`),
	}, s.logged("generate_tags", s.handleGenerateTags))

	// format_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "format_tags",
		Description: "Join a list of tags with a separator",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"tags": {"type": "array", "items": {"type": "string"}, "description": "Tags to join"},
				"separator": {"type": "string", "description": "Separator", "default": " "}
			},
			"required": ["tags"]
		}`),
	}, s.logged("format_tags", s.handleFormatTags))

	// similarity
	s.server.AddTool(&mcp.Tool{
		Name:        "similarity",
		Description: "Positional character-match ratio between two words",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"a": {"type": "string", "description": "First word"},
				"b": {"type": "string", "description": "Second word"}
			},
			"required": ["a", "b"]
		}`),
	}, s.logged("similarity", s.handleSimilarity))

	// list_platforms
	s.server.AddTool(&mcp.Tool{
		Name:        "list_platforms",
		Description: "List supported platforms and their vocabularies",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {}
		}`),
	}, s.logged("list_platforms", s.handleListPlatforms))
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

func decodeArgs(req *mcp.CallToolRequest, v any) error {
	if req.Params == nil || len(req.Params.Arguments) == 0 {
		return nil
	}
	return json.Unmarshal(req.Params.Arguments, v)
}

// Tool handlers.
func (s *Server) handleGenerateTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Topic      string  `json:"topic"`
		Platform   string  `json:"platform"`
		HashPrefix *bool   `json:"hash_prefix"`
		Separator  *string `json:"separator"`
		Explain    bool    `json:"explain"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	if err := tags.ValidateTopic(params.Topic); err != nil {
		return errorResult(err.Error()), nil
	}

	platform := strings.ToLower(strings.TrimSpace(params.Platform))
	if platform == "" {
		platform = s.cfg.DefaultPlatform
	}
	hash := s.cfg.HashPrefix
	if params.HashPrefix != nil {
		hash = *params.HashPrefix
	}
	sep := s.cfg.Separator
	if params.Separator != nil && *params.Separator != "" {
		sep = *params.Separator
	}

	suggestion := s.generator.Suggest(params.Topic, platform)
	names := suggestion.TagNames()

	result := GenerateResult{
		Topic:    suggestion.Topic,
		Platform: suggestion.Platform,
		Resolved: suggestion.Resolved,
		Tags:     names,
		Copy:     ui.FormatCopyLine(names, sep, hash),
	}
	if params.Explain {
		for _, t := range suggestion.Tags {
			result.Sources = append(result.Sources, *t)
		}
	}

	return jsonResult(result)
}

func (s *Server) handleFormatTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Tags      []string `json:"tags"`
		Separator *string  `json:"separator"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	sep := tags.DefaultSeparator
	if params.Separator != nil {
		sep = *params.Separator
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: tags.FormatTags(params.Tags, sep)},
		},
	}, nil
}

func (s *Server) handleSimilarity(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		A string `json:"a"`
		B string `json:"b"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	score := tags.Similarity(params.A, params.B)
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("%.4f", score)},
		},
	}, nil
}

func (s *Server) handleListPlatforms(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var entries []platformEntry
	for _, name := range s.generator.Platforms() {
		words, _ := s.generator.Vocabulary(name)
		entries = append(entries, platformEntry{
			Name:    name,
			Words:   words,
			Default: name == s.cfg.DefaultPlatform,
		})
	}
	return jsonResult(entries)
}
