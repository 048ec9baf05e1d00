package sieve

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText performs Unicode normalization, strips control characters
// and collapses runs of whitespace.
func NormalizeText(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, normed)
	return strings.Join(strings.Fields(normed), " ")
}

// NormalizeAll normalizes every entry and drops the ones that end up empty.
func NormalizeAll(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if n := NormalizeText(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func normalizeKey(s string) string {
	return strings.ToLower(NormalizeText(s))
}
