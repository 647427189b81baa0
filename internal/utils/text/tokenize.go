package text

import (
	"strings"
	"unicode"
)

// NormalizeToken lowercases a single word and strips every rune that is not a
// Unicode letter or digit. The result may be empty, in which case the word
// contributes no token. Queries typed into the search loop are passed through
// the same function so lookups agree with what was indexed.
func NormalizeToken(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Tokenize splits free text into normalized tokens. Any run of runes that are
// neither letters nor digits separates tokens; empty results are dropped.
func Tokenize(content string) []string {
	fields := strings.FieldsFunc(content, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if tok := NormalizeToken(f); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
