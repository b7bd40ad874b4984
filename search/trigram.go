// Package search provides substring search over a terminal's visible and
// scrollback rows, backed by a per-row trigram bloom filter so that most
// rows can be skipped without a full string scan.
package search

import "strings"

// Trigrams returns the set of 3-rune substrings of s, lowercased so that
// matching is case-insensitive. Strings shorter than 3 runes yield the
// whole string as a single "trigram" so short patterns still index.
func Trigrams(s string) []string {
	runes := []rune(strings.ToLower(s))
	if len(runes) < 3 {
		if len(runes) == 0 {
			return nil
		}
		return []string{string(runes)}
	}

	out := make([]string, 0, len(runes)-2)
	for i := 0; i+3 <= len(runes); i++ {
		out = append(out, string(runes[i:i+3]))
	}
	return out
}
