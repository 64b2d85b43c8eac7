// ABOUTME: Root command wiring shared state for every subcommand.
// ABOUTME: Loads config, builds the logger and the tag generator before each run.

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harper/tagsmith/internal/config"
	"github.com/harper/tagsmith/internal/logging"
	"github.com/harper/tagsmith/internal/tags"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	logger    *log.Logger
	generator *tags.Generator
)

var rootCmd = &cobra.Command{
	Use:   "tagsmith",
	Short: "Suggest hashtags for a topic",
	Long: `tagsmith suggests hashtag-style tags for a topic on a given platform.

Tags come from the words of your topic, platform words that look like
them, and the platform's most common tags.

Examples:
  tagsmith generate "cooking tips for beginners"
  tagsmith generate handmade, vintage, earrings -p etsy
  tagsmith platforms
  tagsmith mcp`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		levelFlag, _ := cmd.Flags().GetString("log-level")

		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if levelFlag != "" {
			if !logging.ValidLevel(levelFlag) {
				return fmt.Errorf("unknown log level %q", levelFlag)
			}
			cfg.LogLevel = levelFlag
		}

		logger = logging.NewLogger(cfg.LogLevel, os.Stderr)
		generator = tags.NewGenerator(cfg.BuildVocabulary(), tags.WithLogger(logger))

		logger.Debug("config loaded",
			"path", config.ConfigPath(),
			"platform", cfg.DefaultPlatform,
			"platforms", len(generator.Platforms()))
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/tagsmith/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
}
