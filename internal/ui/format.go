// ABOUTME: Terminal UI formatting for tagsmith output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/tagsmith/internal/models"
	"github.com/harper/tagsmith/internal/tags"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

type PlatformInfo struct {
	Name    string
	Words   int
	Default bool
}

// TagOptions controls how a tag list is rendered.
type TagOptions struct {
	Hash    bool
	Explain bool
}

func display(name string, hash bool) string {
	if hash {
		return tags.HashPrefix + name
	}
	return name
}

func sourceColor(src models.Source) func(a ...interface{}) string {
	switch src {
	case models.SourceToken:
		return bold
	case models.SourceRelated:
		return green
	default:
		return cyan
	}
}

func FormatSuggestionHeader(s *models.Suggestion) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Topic:"), bold(s.Topic)))
	if s.FellBack() {
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			faint("Platform:"),
			s.Resolved,
			yellow(fmt.Sprintf("(unknown platform %q)", s.Platform))))
	} else {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Platform:"), s.Resolved))
	}
	sb.WriteString(Separator())
	return sb.String()
}

func FormatTagList(list []*models.Tag, opts TagOptions) string {
	var sb strings.Builder

	for i, t := range list {
		paint := sourceColor(t.Source)
		if opts.Explain {
			sb.WriteString(fmt.Sprintf("  %s  %s %s\n",
				faint(fmt.Sprintf("%2d", i+1)),
				paint(display(t.Name, opts.Hash)),
				faint(fmt.Sprintf("(%s)", t.Source))))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			faint(fmt.Sprintf("%2d", i+1)),
			paint(display(t.Name, opts.Hash))))
	}

	return sb.String()
}

// FormatCopyLine flattens names into a single line suitable for pasting.
func FormatCopyLine(names []string, separator string, hash bool) string {
	if hash {
		names = tags.Hashtags(names)
	}
	return tags.FormatTags(names, separator)
}

func FormatPlatformList(platforms []PlatformInfo) string {
	var sb strings.Builder

	for _, p := range platforms {
		marker := " "
		if p.Default {
			marker = green("*")
		}
		sb.WriteString(fmt.Sprintf(" %s %s %s\n",
			marker,
			cyan(p.Name),
			faint(fmt.Sprintf("(%d words)", p.Words))))
	}

	return sb.String()
}

func FormatVocabulary(platform string, words []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(platform)))
	sb.WriteString(Separator())
	for i, w := range words {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(fmt.Sprintf("%2d", i+1)), cyan(w)))
	}

	return sb.String()
}

// SuggestionMarkdown renders a suggestion as a markdown document.
func SuggestionMarkdown(s *models.Suggestion, separator string, hash bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Tags for %q\n\n", s.Topic))
	sb.WriteString(fmt.Sprintf("**Platform:** %s\n\n", s.Resolved))
	for _, t := range s.Tags {
		sb.WriteString(fmt.Sprintf("- `%s` _%s_\n", display(t.Name, hash), t.Source))
	}
	sb.WriteString("\n**Copy:**\n\n```\n")
	sb.WriteString(FormatCopyLine(s.TagNames(), separator, hash))
	sb.WriteString("\n```\n")

	return sb.String()
}

// VocabularyMarkdown renders a platform word list as a markdown document.
func VocabularyMarkdown(platform string, words []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s vocabulary\n\n", platform))
	for _, w := range words {
		sb.WriteString(fmt.Sprintf("- %s\n", w))
	}

	return sb.String()
}

func RenderMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw content if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
