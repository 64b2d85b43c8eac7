// ABOUTME: Tests for Suggestion model constructor and methods.
// ABOUTME: Validates fallback detection and tag name extraction.

package models

import "testing"

func TestNewSuggestion(t *testing.T) {
	s := NewSuggestion("art show", "etsy", "etsy", []*Tag{NewTag("art", SourceToken)})

	if s.Topic != "art show" {
		t.Errorf("expected topic %q, got %q", "art show", s.Topic)
	}
	if s.FellBack() {
		t.Error("expected no fallback for a known platform")
	}
	if names := s.TagNames(); len(names) != 1 || names[0] != "art" {
		t.Errorf("expected [art], got %v", names)
	}
}

func TestNewSuggestionNilTags(t *testing.T) {
	s := NewSuggestion("", "nowhere", "youtube", nil)

	if s.Tags == nil {
		t.Error("expected Tags to be an empty slice, not nil")
	}
	if !s.FellBack() {
		t.Error("expected fallback when resolved platform differs")
	}
}
