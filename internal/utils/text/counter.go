// Package text provides small string helpers shared by the domain packages.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters such as Japanese or emoji count once each.
//
// Examples:
//
//	CountRunes("Gopher Weekly") // returns 13
//	CountRunes("月刊ゴー")        // returns 4
//	CountRunes("")              // returns 0
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// LengthBetween reports whether text has between minLen and maxLen characters, inclusive.
func LengthBetween(text string, minLen, maxLen int) bool {
	n := CountRunes(text)
	return n >= minLen && n <= maxLen
}
