// ABOUTME: Similarity command for inspecting the positional match ratio.
// ABOUTME: Reports whether a pair would count as related during generation.

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harper/tagsmith/internal/tags"
	"github.com/spf13/cobra"
)

var similarityCmd = &cobra.Command{
	Use:   "similarity <a> <b>",
	Short: "Show the similarity between two words",
	Long: `Compare two words character by character at the same positions and
divide the matches by the longer length. Pairs above 0.6 count as related.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := strings.ToLower(args[0])
		b := strings.ToLower(args[1])
		score := tags.Similarity(a, b)

		verdict := color.New(color.Faint).Sprint("unrelated")
		if score > tags.RelatedThreshold {
			verdict = color.GreenString("related")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.4f %s\n", score, verdict)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(similarityCmd)
}
