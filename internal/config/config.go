// ABOUTME: Configuration for tagsmith defaults and vocabulary overrides.
// ABOUTME: Handles XDG config paths, YAML load/save, env overrides and validation.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/tagsmith/internal/logging"
	"github.com/harper/tagsmith/internal/tags"
	"gopkg.in/yaml.v3"
)

const (
	envConfigPath = "TAGSMITH_CONFIG"
	envPlatform   = "TAGSMITH_PLATFORM"
	envLogLevel   = "TAGSMITH_LOG_LEVEL"
)

// Config holds tagsmith settings.
type Config struct {
	// DefaultPlatform is used when no platform is given (default: youtube).
	DefaultPlatform string `yaml:"default_platform"`

	// Separator joins tags on the copy line (default: a single space).
	Separator string `yaml:"separator"`

	// HashPrefix shows tags as #tag in output (default: true).
	HashPrefix bool `yaml:"hash_prefix"`

	// LogLevel is one of debug, info, warn, error (default: info).
	LogLevel string `yaml:"log_level"`

	// Vocabulary overrides or adds platform word lists.
	Vocabulary map[string][]string `yaml:"vocabulary,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultPlatform: tags.DefaultPlatform,
		Separator:       tags.DefaultSeparator,
		HashPrefix:      true,
		LogLevel:        "info",
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tagsmith")
}

// ConfigPath returns the path to the config file. TAGSMITH_CONFIG wins over
// the XDG location.
func ConfigPath() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return expandPath(p)
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load loads configuration from ConfigPath.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads configuration from path, returns defaults if not found.
// Environment overrides are applied after the file.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes configuration to ConfigPath.
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes configuration to path, creating its directory.
func SaveTo(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Exists returns true if a config file exists.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q (want one of %s)", c.LogLevel, strings.Join(logging.Levels, ", "))
	}
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}
	for platform, words := range c.Vocabulary {
		if strings.TrimSpace(platform) == "" {
			return errors.New("vocabulary has an empty platform name")
		}
		usable := false
		for _, w := range words {
			if strings.TrimSpace(w) != "" {
				usable = true
				break
			}
		}
		if !usable {
			return fmt.Errorf("vocabulary for %q has no words", platform)
		}
	}
	return nil
}

// BuildVocabulary returns the built-in vocabulary with this config's
// overrides merged in.
func (c *Config) BuildVocabulary() *tags.Vocabulary {
	base := tags.DefaultVocabulary()
	if len(c.Vocabulary) == 0 {
		return base
	}
	return base.Merge(c.Vocabulary)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envPlatform); v != "" {
		cfg.DefaultPlatform = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
