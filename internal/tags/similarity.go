// ABOUTME: Positional character-match ratio used to relate topic tokens to vocabulary words.
// ABOUTME: Deliberately not an edit distance; output compatibility depends on this exact rule.

package tags

// Similarity compares a and b rune by rune at identical positions over the
// length of the shorter string, and divides the number of equal positions by
// the length of the longer one. "cat" vs "cats" is 0.75, "cat" vs "dog" is 0.
// Two empty strings score 0.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	shorter, longer := len(ra), len(rb)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 {
		return 0
	}

	matches := 0
	for i := 0; i < shorter; i++ {
		if ra[i] == rb[i] {
			matches++
		}
	}
	return float64(matches) / float64(longer)
}
