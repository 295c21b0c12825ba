package analyzer

import (
	"strings"
	"unicode"
)

// Words splits text into lower-cased word tokens using unicode word
// boundaries. A word is a run of letters, digits, and underscores.
// No stemming or stopword removal: the lexical scorer's semantics are
// defined over exact word overlap.
func Words(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// WordSet returns the distinct words of text.
func WordSet(text string) map[string]struct{} {
	words := Words(text)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Overlap counts how many words of a appear in b.
func Overlap(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	matches := 0
	for w := range a {
		if _, ok := b[w]; ok {
			matches++
		}
	}
	return matches
}
