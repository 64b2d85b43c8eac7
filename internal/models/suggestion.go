// ABOUTME: Suggestion model bundling one generation request with its result.
// ABOUTME: Used as the structured shape for JSON/YAML output and MCP responses.

package models

type Suggestion struct {
	Topic    string `json:"topic" yaml:"topic"`
	Platform string `json:"platform" yaml:"platform"`
	Resolved string `json:"resolved_platform" yaml:"resolved_platform"`
	Tags     []*Tag `json:"tags" yaml:"tags"`
}

func NewSuggestion(topic, platform, resolved string, tags []*Tag) *Suggestion {
	if tags == nil {
		tags = []*Tag{}
	}
	return &Suggestion{
		Topic:    topic,
		Platform: platform,
		Resolved: resolved,
		Tags:     tags,
	}
}

// FellBack reports whether the requested platform was replaced by the default.
func (s *Suggestion) FellBack() bool {
	return s.Platform != s.Resolved
}

// TagNames returns the suggested tag names in order.
func (s *Suggestion) TagNames() []string {
	return Names(s.Tags)
}
