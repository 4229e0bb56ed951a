package text_test

import (
	"strings"
	"testing"

	"magazine-catalog/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "ASCII", input: "Jane Doe", expected: 8},
		{name: "Japanese", input: "月刊ゴー", expected: 4},
		{name: "mixed", input: "Go言語", expected: 4},
		{name: "emoji", input: "Gophers🐹", expected: 8},
		{name: "accented", input: "Café", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.CountRunes(tt.input); got != tt.expected {
				t.Errorf("CountRunes(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLengthBetween(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "below minimum", input: "J", want: false},
		{name: "at minimum", input: "Jo", want: true},
		{name: "at maximum", input: strings.Repeat("a", 16), want: true},
		{name: "above maximum", input: strings.Repeat("a", 17), want: false},
		// 16 characters but 48 bytes
		{name: "multi-byte at maximum", input: strings.Repeat("語", 16), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.LengthBetween(tt.input, 2, 16); got != tt.want {
				t.Errorf("LengthBetween(%q, 2, 16) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
