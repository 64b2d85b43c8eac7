// ABOUTME: Per-platform baseline vocabulary used to pad and enrich tag suggestions.
// ABOUTME: Vocabularies are immutable once built; accessors hand out copies.

package tags

import (
	"sort"
	"strings"
)

// DefaultPlatform is used whenever a requested platform is unknown.
const DefaultPlatform = "youtube"

// Vocabulary maps a platform key to its ordered list of lowercase words.
type Vocabulary struct {
	words map[string][]string
}

var builtinWords = map[string][]string{
	"youtube":   {"video", "trending", "viral", "subscribe", "music", "gaming", "vlog", "tutorial", "review", "comedy"},
	"etsy":      {"handmade", "vintage", "craft", "diy", "shop", "art", "custom", "gift", "design"},
	"google":    {"search", "business", "marketing", "seo", "ads", "optimize", "online", "digital"},
	"fiverr":    {"freelance", "service", "gig", "seller", "professional", "skilled", "offer"},
	"amazon":    {"product", "seller", "deal", "shopping", "price", "buy", "review", "rating"},
	"redbubble": {"print", "design", "merch", "apparel", "artist", "creative", "unique"},
	"ebay":      {"auction", "seller", "buy", "bidding", "deal", "vintage", "collectible"},
	"shopify":   {"ecommerce", "store", "shop", "sell", "customer", "online", "product"},
	"facebook":  {"social", "community", "engagement", "share", "like", "friend"},
	"tiktok":    {"trending", "short", "video", "dance", "challenge", "viral", "fun"},
	"twitter":   {"tweet", "news", "trending", "discussion", "thoughts", "update"},
	"instagram": {"photo", "visual", "aesthetic", "lifestyle", "content", "influencer"},
	"linkedin":  {"professional", "business", "career", "networking", "corporate", "industry"},
	"pinterest": {"idea", "inspiration", "diy", "home", "fashion", "lifestyle"},
}

// DefaultVocabulary returns the built-in platform table.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(builtinWords)
}

// NewVocabulary builds a Vocabulary from a platform→words map. Keys and words
// are lowercased and trimmed, empty words and platforms without words are
// dropped. The input map is copied, so later changes to it have no effect.
func NewVocabulary(words map[string][]string) *Vocabulary {
	v := &Vocabulary{words: make(map[string][]string, len(words))}
	for platform, list := range words {
		key := normalizeWord(platform)
		if key == "" {
			continue
		}
		cleaned := cleanWords(list)
		if len(cleaned) == 0 {
			continue
		}
		v.words[key] = cleaned
	}
	return v
}

// Merge returns a new Vocabulary with overrides layered on top of v.
// A platform present in overrides replaces v's list for that platform.
func (v *Vocabulary) Merge(overrides map[string][]string) *Vocabulary {
	combined := make(map[string][]string, len(v.words)+len(overrides))
	for platform, list := range v.words {
		combined[platform] = list
	}
	for platform, list := range overrides {
		key := normalizeWord(platform)
		if len(cleanWords(list)) == 0 {
			continue
		}
		combined[key] = list
	}
	return NewVocabulary(combined)
}

// Lookup returns the words for platform, or false when it is unknown.
// The returned slice is a copy.
func (v *Vocabulary) Lookup(platform string) ([]string, bool) {
	list, ok := v.words[platform]
	if !ok {
		return nil, false
	}
	return append([]string(nil), list...), true
}

// Resolve returns the platform key that will actually be used for platform,
// applying the fallback to DefaultPlatform.
func (v *Vocabulary) Resolve(platform string) string {
	if _, ok := v.words[platform]; ok {
		return platform
	}
	return DefaultPlatform
}

// Platforms returns all platform keys in sorted order.
func (v *Vocabulary) Platforms() []string {
	keys := make([]string, 0, len(v.words))
	for k := range v.words {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// resolved returns the internal list for platform after fallback. Callers must
// not modify it.
func (v *Vocabulary) resolved(platform string) []string {
	if list, ok := v.words[platform]; ok {
		return list
	}
	return v.words[DefaultPlatform]
}

func cleanWords(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if n := normalizeWord(w); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
