// ABOUTME: Tag generation from a free-text topic and a platform vocabulary.
// ABOUTME: Tokens first, then similar vocabulary words, then padding, deduped and capped.

package tags

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/harper/tagsmith/internal/models"
)

const (
	// MinTokenLength is the shortest token kept from the topic, in runes.
	MinTokenLength = 3

	// RelatedThreshold is the similarity a token must exceed for a
	// vocabulary word to count as related.
	RelatedThreshold = 0.6

	// SoftLimit bounds the related and padding passes.
	SoftLimit = 25

	// MaxTags is the hard cap on returned tags.
	MaxTags = 30
)

// Generator turns topics into tag suggestions. It is safe for concurrent use.
type Generator struct {
	vocab  *Vocabulary
	logger *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-call debug output.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator over vocab. A nil vocab means the
// built-in table.
func NewGenerator(vocab *Vocabulary, opts ...Option) *Generator {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	g := &Generator{
		vocab:  vocab,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns up to MaxTags unique tags for topic on platform.
// Unknown platforms use the DefaultPlatform vocabulary.
func (g *Generator) Generate(topic, platform string) []string {
	explained := g.Explain(topic, platform)
	out := make([]string, len(explained))
	for i, t := range explained {
		out[i] = t.Name
	}
	return out
}

// Explain is Generate with each tag labeled by the pass that produced it.
func (g *Generator) Explain(topic, platform string) []*models.Tag {
	tokens := Tokenize(topic)
	words := g.vocab.resolved(platform)

	var out []*models.Tag
	for _, t := range dedupe(tokens) {
		out = append(out, models.NewTag(t, models.SourceToken))
	}

	// Related words are appended even if already present; the final dedupe
	// removes them but they still count toward SoftLimit.
	for _, w := range words {
		if len(out) < SoftLimit && relatedToAny(tokens, w) {
			out = append(out, models.NewTag(w, models.SourceRelated))
		}
	}

	present := make(map[string]bool, len(out))
	for _, t := range out {
		present[t.Name] = true
	}
	for _, w := range words {
		if len(out) >= SoftLimit {
			break
		}
		if present[w] {
			continue
		}
		present[w] = true
		out = append(out, models.NewTag(w, models.SourcePadding))
	}

	out = dedupeTags(out)
	if len(out) > MaxTags {
		out = out[:MaxTags]
	}

	g.logger.Debug("generated tags",
		"platform", platform,
		"resolved", g.vocab.Resolve(platform),
		"tokens", len(tokens),
		"tags", len(out))

	return out
}

// Suggest wraps Explain's result together with the request it answers.
func (g *Generator) Suggest(topic, platform string) *models.Suggestion {
	return models.NewSuggestion(topic, platform, g.Resolve(platform), g.Explain(topic, platform))
}

// Platforms returns the known platform keys, sorted.
func (g *Generator) Platforms() []string {
	return g.vocab.Platforms()
}

// Vocabulary returns a copy of platform's words without applying fallback.
func (g *Generator) Vocabulary(platform string) ([]string, bool) {
	return g.vocab.Lookup(platform)
}

// Resolve reports which platform key Generate would use for platform.
func (g *Generator) Resolve(platform string) string {
	return g.vocab.Resolve(platform)
}

// Tokenize lowercases topic, splits it on runs of whitespace and commas, and
// drops tokens shorter than MinTokenLength. Duplicates are kept.
func Tokenize(topic string) []string {
	fields := strings.FieldsFunc(strings.ToLower(topic), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < MinTokenLength {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func relatedToAny(tokens []string, word string) bool {
	for _, t := range tokens {
		if Similarity(t, word) > RelatedThreshold {
			return true
		}
	}
	return false
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func dedupeTags(list []*models.Tag) []*models.Tag {
	seen := make(map[string]bool, len(list))
	out := make([]*models.Tag, 0, len(list))
	for _, t := range list {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		out = append(out, t)
	}
	return out
}
