// Package styledtext renders post text for the target feed. LinkedIn
// has no rich text but does render the mathematical Unicode alphabets,
// so emphasis becomes a character-for-character glyph substitution.
package styledtext

// Style selects a substitution table.
type Style string

const (
	Bold   Style = "bold"
	Italic Style = "italic"
)

const plain = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var charMaps = map[Style]map[rune]rune{}

func init() {
	bold := make(map[rune]rune, len(plain))
	italic := make(map[rune]rune, len(plain))
	for i := 0; i < 26; i++ {
		upper := rune('A' + i)
		lower := rune('a' + i)
		// Mathematical Bold: U+1D400 (A) and U+1D41A (a).
		bold[upper] = rune(0x1D400 + i)
		bold[lower] = rune(0x1D41A + i)
		// Mathematical Italic: U+1D434 (A) and U+1D44E (a).
		italic[upper] = rune(0x1D434 + i)
		italic[lower] = rune(0x1D44E + i)
	}
	// U+1D455 is unassigned; Unicode reserves Planck's h instead.
	italic['h'] = 0x210E
	charMaps[Bold] = bold
	charMaps[Italic] = italic
}

// Apply substitutes each ASCII letter with its styled glyph. Digits,
// punctuation, whitespace, and non-ASCII runes pass through unchanged.
// One-directional: no inverse lookup is provided.
func Apply(text string, style Style) string {
	table, ok := charMaps[style]
	if !ok {
		return text
	}
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if styled, ok := table[r]; ok {
			out = append(out, styled)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
