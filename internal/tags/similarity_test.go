// ABOUTME: Tests for the positional similarity ratio.
// ABOUTME: Pins the exact values the generator's related pass depends on.

package tags

import "testing"

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "abc", b: "abc", want: 1},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
		{name: "prefix longer", a: "cat", b: "cats", want: 0.75},
		{name: "prefix shorter", a: "cats", b: "cat", want: 0.75},
		{name: "no shared positions", a: "cat", b: "dog", want: 0},
		{name: "offset kills match", a: "video", b: "xvideo", want: 0},
		{name: "partial", a: "gamer", b: "gaming", want: 3.0 / 6.0},
		{name: "one empty", a: "", b: "abc", want: 0},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "runes not bytes", a: "café", b: "cafe", want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityDeterministic(t *testing.T) {
	first := Similarity("tutorials", "tutorial")
	for i := 0; i < 10; i++ {
		if got := Similarity("tutorials", "tutorial"); got != first {
			t.Fatalf("expected stable result %v, got %v", first, got)
		}
	}
}

func TestSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"cooking", "comedy"},
		{"handmade", "hand"},
		{"viral", "virals"},
		{"x", "xxxxxxxx"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, outside [0,1]", p[0], p[1], got)
		}
	}
}
