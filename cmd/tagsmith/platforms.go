// ABOUTME: Platforms command for listing supported platforms.
// ABOUTME: Shows every platform with its word count, or one platform's words.

package main

import (
	"fmt"
	"strings"

	"github.com/harper/tagsmith/internal/ui"
	"github.com/spf13/cobra"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms [name]",
	Short: "List platforms and their vocabularies",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		markdown, _ := cmd.Flags().GetBool("markdown")
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			name := strings.ToLower(strings.TrimSpace(args[0]))
			words, ok := generator.Vocabulary(name)
			if !ok {
				return fmt.Errorf("unknown platform: %s", name)
			}
			if markdown {
				rendered, _ := ui.RenderMarkdown(ui.VocabularyMarkdown(name, words))
				fmt.Fprint(out, rendered)
				return nil
			}
			fmt.Fprint(out, ui.FormatVocabulary(name, words))
			return nil
		}

		var infos []ui.PlatformInfo
		for _, name := range generator.Platforms() {
			words, _ := generator.Vocabulary(name)
			infos = append(infos, ui.PlatformInfo{
				Name:    name,
				Words:   len(words),
				Default: name == cfg.DefaultPlatform,
			})
		}
		fmt.Fprint(out, ui.FormatPlatformList(infos))
		return nil
	},
}

func init() {
	platformsCmd.Flags().Bool("markdown", false, "render a platform's words as markdown")
	rootCmd.AddCommand(platformsCmd)
}
