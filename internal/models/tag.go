// ABOUTME: Tag model for generated suggestions.
// ABOUTME: Normalizes tag names to lowercase with trimmed whitespace and records their origin.

package models

import "strings"

// Source names the generation pass that first produced a tag.
type Source string

const (
	SourceToken   Source = "token"
	SourceRelated Source = "related"
	SourcePadding Source = "padding"
)

type Tag struct {
	Name   string `json:"name" yaml:"name"`
	Source Source `json:"source" yaml:"source"`
}

func NewTag(name string, source Source) *Tag {
	return &Tag{
		Name:   strings.ToLower(strings.TrimSpace(name)),
		Source: source,
	}
}

// Names returns the tag names in order.
func Names(tags []*Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}
