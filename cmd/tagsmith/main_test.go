// ABOUTME: Tests for tagsmith CLI commands.
// ABOUTME: Executes the root command in-process with an isolated config directory.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harper/tagsmith/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

// resetFlags restores every flag to its default so state does not leak
// between in-process runs of the shared root command.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TAGSMITH_CONFIG", "")
	t.Setenv("TAGSMITH_PLATFORM", "")
	t.Setenv("TAGSMITH_LOG_LEVEL", "")

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGeneratePlain(t *testing.T) {
	out, err := runCLI(t, "generate", "cooking tips for beginners", "-f", "plain")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}

	want := "#cooking #tips #for #beginners #video #trending #viral #subscribe #music #gaming #vlog #tutorial #review #comedy\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestGeneratePlainNoHashSeparator(t *testing.T) {
	out, err := runCLI(t, "generate", "art", "show", "-p", "ETSY", "-f", "plain", "--no-hash", "-s", ",")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "art,show,shop,") {
		t.Errorf("expected comma-joined etsy tags, got %q", out)
	}
	if strings.Contains(out, "#") {
		t.Errorf("expected no hash prefix, got %q", out)
	}
}

func TestGenerateJSON(t *testing.T) {
	out, err := runCLI(t, "generate", "art show", "-p", "unknownplatform", "-f", "json")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}

	var s models.Suggestion
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if s.Resolved != "youtube" {
		t.Errorf("expected fallback to youtube, got %q", s.Resolved)
	}
	if len(s.Tags) == 0 || s.Tags[0].Name != "art" || s.Tags[0].Source != models.SourceToken {
		t.Errorf("expected first tag 'art' from token pass, got %+v", s.Tags)
	}
}

func TestGenerateYAML(t *testing.T) {
	out, err := runCLI(t, "generate", "", "-p", "etsy", "-f", "yaml")
	if err == nil {
		t.Fatalf("expected empty topic to be rejected, got %s", out)
	}

	out, err = runCLI(t, "generate", "gift ideas", "-p", "etsy", "-f", "yaml")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	var s models.Suggestion
	if err := yaml.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}
	if s.Platform != "etsy" || len(s.Tags) == 0 {
		t.Errorf("unexpected suggestion %+v", s)
	}
}

func TestGenerateTextExplain(t *testing.T) {
	out, err := runCLI(t, "generate", "tutorials", "--explain")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "#tutorial (related)") {
		t.Errorf("expected related annotation, got %q", out)
	}
	if !strings.Contains(out, "#tutorials #tutorial #video") {
		t.Errorf("expected copy line, got %q", out)
	}
}

func TestGenerateMarkdown(t *testing.T) {
	out, err := runCLI(t, "generate", "art show", "-f", "md")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "art") {
		t.Errorf("expected rendered tags, got %q", out)
	}
}

func TestGenerateRejectsEmptyTopicAndUnknownFormat(t *testing.T) {
	if _, err := runCLI(t, "generate"); err == nil {
		t.Error("expected error without a topic")
	}
	if _, err := runCLI(t, "generate", "   "); err == nil {
		t.Error("expected error for blank topic")
	}
	if _, err := runCLI(t, "generate", "art", "-f", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestGenerateUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "default_platform: mastodon\nhash_prefix: false\nvocabulary:\n  mastodon: [toot, fediverse]\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "--config", path, "generate", "my first post", "-f", "plain")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	if out != "first post toot fediverse\n" {
		t.Errorf("expected mastodon vocabulary without hashes, got %q", out)
	}
}

func TestPlatforms(t *testing.T) {
	out, err := runCLI(t, "platforms")
	if err != nil {
		t.Fatalf("platforms failed: %v\n%s", err, out)
	}
	for _, p := range []string{"youtube", "etsy", "pinterest", "(10 words)"} {
		if !strings.Contains(out, p) {
			t.Errorf("expected %q in output: %s", p, out)
		}
	}

	out, err = runCLI(t, "platforms", "etsy")
	if err != nil {
		t.Fatalf("platforms etsy failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "handmade") {
		t.Errorf("expected etsy words, got %s", out)
	}

	if _, err := runCLI(t, "platforms", "myspace"); err == nil {
		t.Error("expected error for unknown platform")
	}
}

func TestSimilarityCommand(t *testing.T) {
	out, err := runCLI(t, "similarity", "cat", "cats")
	if err != nil {
		t.Fatalf("similarity failed: %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "0.7500 related") {
		t.Errorf("expected '0.7500 related', got %q", out)
	}

	out, _ = runCLI(t, "similarity", "cat", "dog")
	if !strings.HasPrefix(out, "0.0000 unrelated") {
		t.Errorf("expected '0.0000 unrelated', got %q", out)
	}
}

func TestConfigInitShowPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := runCLI(t, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	if _, err := runCLI(t, "--config", path, "config", "init"); err == nil {
		t.Error("expected init to refuse overwriting without --force")
	}
	if _, err := runCLI(t, "--config", path, "config", "init", "--force"); err != nil {
		t.Errorf("expected --force to overwrite, got %v", err)
	}

	out, err = runCLI(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "default_platform: youtube") {
		t.Errorf("expected default platform in output, got %q", out)
	}

	out, err = runCLI(t, "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("expected %s, got %q", path, out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := runCLI(t, "--log-level", "chatty", "platforms"); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "tagsmith dev") {
		t.Errorf("expected version line, got %q", out)
	}
}
