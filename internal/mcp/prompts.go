// ABOUTME: MCP prompts for tag suggestion workflows.
// ABOUTME: Seeds the conversation with generated tags for the model to refine.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/tagsmith/internal/tags"
	"github.com/harper/tagsmith/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "suggest-tags",
		Description: "Refine generated tags for a topic on a platform",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "topic",
				Description: "Topic or keywords to tag",
				Required:    true,
			},
			{
				Name:        "platform",
				Description: "Target platform (default from config)",
				Required:    false,
			},
		},
	}, s.getSuggestTagsPrompt)
}

func (s *Server) getSuggestTagsPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := req.Params.Arguments["topic"]
	if err := tags.ValidateTopic(topic); err != nil {
		return nil, err
	}

	platform := strings.ToLower(strings.TrimSpace(req.Params.Arguments["platform"]))
	if platform == "" {
		platform = s.cfg.DefaultPlatform
	}

	suggestion := s.generator.Suggest(topic, platform)
	copyLine := ui.FormatCopyLine(suggestion.TagNames(), s.cfg.Separator, s.cfg.HashPrefix)

	template := fmt.Sprintf(`I need hashtags for a %s post about: %s

A keyword-based generator suggested these tags:

%s

Please:
1. Keep the tags that fit the topic and drop the generic ones that don't
2. Add up to 10 more specific tags a %s audience would search for
3. Return the final list on one line, ready to paste

Use the generate_tags tool again if you want suggestions for a reworded topic.`,
		suggestion.Resolved, topic, copyLine, suggestion.Resolved)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Tag suggestions for %q on %s", topic, suggestion.Resolved),
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}
