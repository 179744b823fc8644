package styledtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForFeedBoldEmphasis(t *testing.T) {
	out, err := FormatForFeed("Most agencies have a **volume problem**.")
	require.NoError(t, err)

	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "<strong>")
	assert.Contains(t, out, Apply("volume problem", Bold))
	assert.True(t, strings.HasPrefix(out, "Most agencies have a "))
}

func TestFormatForFeedItalicEmphasis(t *testing.T) {
	out, err := FormatForFeed("This is *the* lever.")
	require.NoError(t, err)

	assert.NotContains(t, out, "*")
	assert.Contains(t, out, Apply("the", Italic))
}

func TestFormatForFeedHeadingsBecomeBoldLines(t *testing.T) {
	out, err := FormatForFeed("# The Market Reality\n\nSome body text.")
	require.NoError(t, err)

	assert.Contains(t, out, Apply("The Market Reality", Bold))
	assert.Contains(t, out, "Some body text.")
	assert.NotContains(t, out, "#")
	assert.NotContains(t, out, "<")
}

func TestFormatForFeedFlattensLists(t *testing.T) {
	out, err := FormatForFeed("1. First step\n2. Second step\n\n- point a\n- point b")
	require.NoError(t, err)

	assert.Contains(t, out, "1. First step")
	assert.Contains(t, out, "2. Second step")
	assert.Contains(t, out, "• point a")
	assert.Contains(t, out, "• point b")
	assert.NotContains(t, out, "<li>")
}

func TestFormatForFeedKeepsListStartNumber(t *testing.T) {
	out, err := FormatForFeed("3. Third step\n4. Fourth step")
	require.NoError(t, err)

	assert.Contains(t, out, "3. Third step")
	assert.Contains(t, out, "4. Fourth step")
	assert.NotContains(t, out, "1. Third step", "source numbering must survive the flatten")
}

func TestFormatForFeedPreservesLineStructure(t *testing.T) {
	out, err := FormatForFeed("Line one.\n\nLine two.\n\nLine three.")
	require.NoError(t, err)

	parts := strings.Split(out, "\n\n")
	assert.Len(t, parts, 3)
	assert.Equal(t, "Line one.", parts[0])
}

func TestFormatForFeedUnescapesEntities(t *testing.T) {
	out, err := FormatForFeed("Speed & volume \"win\".")
	require.NoError(t, err)

	assert.Contains(t, out, "Speed & volume")
	assert.NotContains(t, out, "&amp;")
	assert.NotContains(t, out, "&quot;")
}
