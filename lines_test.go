package layoutmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCharsIntoLines_Empty(t *testing.T) {
	assert.Nil(t, groupCharsIntoLines(nil, 3.0))
	assert.Nil(t, groupCharsIntoLines([]Char{}, 3.0))
}

func TestGroupCharsIntoLines_SingleStrayChar(t *testing.T) {
	lines := groupCharsIntoLines(charRun("x", 12, 10, 50), 3.0)
	require.Len(t, lines, 1)
	assert.Equal(t, "x", lines[0].Text())
}

func TestGroupCharsIntoLines_SplitsByVerticalCenter(t *testing.T) {
	chars := append(charRun("top", 12, 0, 100), charRun("bottom", 12, 0, 120)...)

	lines := groupCharsIntoLines(chars, 3.0)
	require.Len(t, lines, 2)
	assert.Equal(t, "top", lines[0].Text())
	assert.Equal(t, "bottom", lines[1].Text())
}

func TestGroupCharsIntoLines_ToleranceKeepsWobblyBaseline(t *testing.T) {
	// Characters drifting within the tolerance stay on one line.
	chars := []Char{
		{Text: "a", Size: 12, HasSize: true, X0: 0, X1: 5, Top: 100, Bottom: 112},
		{Text: "b", Size: 12, HasSize: true, X0: 5, X1: 10, Top: 102, Bottom: 114},
		{Text: "c", Size: 12, HasSize: true, X0: 10, X1: 15, Top: 101, Bottom: 113},
	}

	lines := groupCharsIntoLines(chars, 3.0)
	require.Len(t, lines, 1)
	assert.Equal(t, "abc", lines[0].Text())
}

func TestGroupCharsIntoLines_SortsLineCharsByX(t *testing.T) {
	// Characters arrive in arbitrary horizontal order.
	chars := []Char{
		{Text: "c", Size: 12, HasSize: true, X0: 20, X1: 25, Top: 100, Bottom: 112},
		{Text: "a", Size: 12, HasSize: true, X0: 0, X1: 5, Top: 100, Bottom: 112},
		{Text: "b", Size: 12, HasSize: true, X0: 10, X1: 15, Top: 100, Bottom: 112},
	}

	lines := groupCharsIntoLines(chars, 3.0)
	require.Len(t, lines, 1)
	assert.Equal(t, "abc", lines[0].Text())
}

func TestGroupCharsIntoLines_TopToBottomOrder(t *testing.T) {
	chars := append(charRun("second", 12, 0, 200), charRun("first", 12, 0, 50)...)
	chars = append(chars, charRun("third", 12, 0, 350)...)

	lines := groupCharsIntoLines(chars, 3.0)
	require.Len(t, lines, 3)
	assert.Equal(t, "first", lines[0].Text())
	assert.Equal(t, "second", lines[1].Text())
	assert.Equal(t, "third", lines[2].Text())
}

func TestLine_DominantSize(t *testing.T) {
	line := Line{Chars: append(charRun("big", 14, 0, 0), charRun("smaller", 12, 50, 0)...)}
	size, ok := line.DominantSize()
	require.True(t, ok)
	assert.Equal(t, 12.0, size)

	// Tie broken by first occurrence.
	tied := Line{Chars: append(charRun("ab", 14, 0, 0), charRun("cd", 12, 50, 0)...)}
	size, ok = tied.DominantSize()
	require.True(t, ok)
	assert.Equal(t, 14.0, size)

	// No sized characters at all.
	unsized := Line{Chars: []Char{{Text: "•", X0: 0, X1: 5, Top: 0, Bottom: 10}}}
	_, ok = unsized.DominantSize()
	assert.False(t, ok)
}
