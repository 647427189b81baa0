// Package text provides utilities for text processing and analysis.
// This package includes reusable functions for tokenization, character
// counting and display shortening that are shared between the tokenizer,
// the index and the query loop so that all of them agree on what a token is.
package text

// CountRunes counts the number of Unicode characters (runes) in the given text.
// This function correctly handles multi-byte characters including Japanese,
// Chinese, emoji, and other Unicode characters by counting runes instead of bytes.
//
// Examples:
//
//	CountRunes("hello")          // returns 5 (ASCII text)
//	CountRunes("こんにちは")       // returns 5 (Japanese text)
//	CountRunes("hello世界")       // returns 7 (mixed text)
//	CountRunes("")               // returns 0 (empty string)
func CountRunes(text string) int {
	return len([]rune(text))
}

// Shorten returns s unchanged when it fits within max runes, otherwise the
// first max runes with the final one replaced by an ellipsis. Rune-aware so
// multi-byte titles are never cut mid-character.
func Shorten(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	return string(runes[:max-1]) + "…"
}
