// ABOUTME: Flattening and display helpers for generated tag lists.
// ABOUTME: The generator never adds '#'; callers opt in at display time.

package tags

import (
	"errors"
	"strings"
)

// DefaultSeparator joins tags when no separator is given.
const DefaultSeparator = " "

// HashPrefix is prepended to each tag when displayed as a hashtag.
const HashPrefix = "#"

// ErrEmptyTopic is returned by ValidateTopic for blank input.
var ErrEmptyTopic = errors.New("please enter a topic or keywords")

// FormatTags joins tags with separator. No other transformation is applied.
func FormatTags(tags []string, separator string) string {
	return strings.Join(tags, separator)
}

// Hashtags returns a copy of tags with HashPrefix prepended to each entry.
func Hashtags(tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = HashPrefix + t
	}
	return out
}

// ValidateTopic rejects topics that are empty after trimming whitespace.
// Generate itself accepts any input; front ends call this first.
func ValidateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return ErrEmptyTopic
	}
	return nil
}
