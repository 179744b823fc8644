package styledtext

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestApplyBoldSubstitutesEveryLetter(t *testing.T) {
	in := "HookLineSinker"
	out := Apply(in, Bold)

	assert.Equal(t, utf8.RuneCountInString(in), utf8.RuneCountInString(out), "one glyph per letter")
	for _, r := range out {
		assert.False(t, r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z', "no plain ASCII letter may survive: %q", r)
	}
}

func TestApplyLeavesNonLettersInPlace(t *testing.T) {
	in := "3 steps: do *this*, then 2x — 100%!"
	out := Apply(in, Bold)

	inRunes := []rune(in)
	outRunes := []rune(out)
	assert.Equal(t, len(inRunes), len(outRunes))
	for i, r := range inRunes {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
			assert.NotEqual(t, r, outRunes[i])
			continue
		}
		assert.Equal(t, r, outRunes[i], "position %d must pass through unchanged", i)
	}
}

func TestApplyItalicUsesPlanckH(t *testing.T) {
	out := Apply("h", Italic)
	assert.Equal(t, "ℎ", out, "math italic small h is unassigned in Unicode")
}

func TestApplyKnownGlyphs(t *testing.T) {
	assert.Equal(t, "\U0001D400", Apply("A", Bold))
	assert.Equal(t, "\U0001D41A", Apply("a", Bold))
	assert.Equal(t, "\U0001D434", Apply("A", Italic))
	assert.Equal(t, "\U0001D44E", Apply("a", Italic))
}

func TestApplyUnknownStylePassesThrough(t *testing.T) {
	assert.Equal(t, "unchanged", Apply("unchanged", Style("underline")))
}

func TestApplyDeterministic(t *testing.T) {
	in := "The Result"
	assert.Equal(t, Apply(in, Bold), Apply(in, Bold))
	assert.False(t, strings.ContainsAny(Apply(in, Bold), "TheRsult"))
}
