// ABOUTME: Generate command for suggesting tags from a topic.
// ABOUTME: Supports text, plain, json, yaml and rendered markdown output.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/harper/tagsmith/internal/models"
	"github.com/harper/tagsmith/internal/tags"
	"github.com/harper/tagsmith/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var generateCmd = &cobra.Command{
	Use:     "generate <topic...>",
	Aliases: []string{"gen", "g"},
	Short:   "Suggest tags for a topic",
	Long: `Suggest up to 30 tags for a topic on a platform.

The topic is split on spaces and commas; words shorter than three
characters are ignored. Unknown platforms fall back to youtube.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, _ := cmd.Flags().GetString("platform")
		separator, _ := cmd.Flags().GetString("separator")
		noHash, _ := cmd.Flags().GetBool("no-hash")
		format, _ := cmd.Flags().GetString("format")
		explain, _ := cmd.Flags().GetBool("explain")

		topic := strings.Join(args, " ")
		if err := tags.ValidateTopic(topic); err != nil {
			return err
		}

		platform = strings.ToLower(strings.TrimSpace(platform))
		if platform == "" {
			platform = cfg.DefaultPlatform
		}
		if !cmd.Flags().Changed("separator") {
			separator = cfg.Separator
		}
		hash := cfg.HashPrefix && !noHash

		suggestion := generator.Suggest(topic, platform)
		if suggestion.FellBack() {
			logger.Warn("unknown platform, using default", "platform", platform, "default", suggestion.Resolved)
		}

		out := cmd.OutOrStdout()
		switch format {
		case "text":
			return writeText(out, suggestion, separator, hash, explain)
		case "plain":
			_, err := fmt.Fprintln(out, ui.FormatCopyLine(suggestion.TagNames(), separator, hash))
			return err
		case "json":
			return writeJSON(out, suggestion)
		case "yaml":
			return writeYAML(out, suggestion)
		case "md":
			rendered, _ := ui.RenderMarkdown(ui.SuggestionMarkdown(suggestion, separator, hash))
			_, err := fmt.Fprint(out, rendered)
			return err
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

func writeText(w io.Writer, s *models.Suggestion, separator string, hash, explain bool) error {
	var sb strings.Builder
	sb.WriteString(ui.FormatSuggestionHeader(s))
	sb.WriteString(ui.FormatTagList(s.Tags, ui.TagOptions{Hash: hash, Explain: explain}))
	sb.WriteString("\n")
	sb.WriteString(ui.FormatCopyLine(s.TagNames(), separator, hash))
	sb.WriteString("\n")
	_, err := fmt.Fprint(w, sb.String())
	return err
}

func writeJSON(w io.Writer, s *models.Suggestion) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, s *models.Suggestion) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

func init() {
	generateCmd.Flags().StringP("platform", "p", "", "target platform (default from config)")
	generateCmd.Flags().StringP("separator", "s", tags.DefaultSeparator, "separator for the copy line")
	generateCmd.Flags().Bool("no-hash", false, "do not prefix tags with #")
	generateCmd.Flags().StringP("format", "f", "text", "output format: text, plain, json, yaml, md")
	generateCmd.Flags().Bool("explain", false, "show which pass produced each tag")
	rootCmd.AddCommand(generateCmd)
}
