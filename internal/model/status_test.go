package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStatus_AddAndRatio(t *testing.T) {
	a := FileStatus{Path: "dir", Marked: 3, Total: 10}
	b := FileStatus{Path: "dir/b.go", Marked: 0, Total: 5}

	sum := a.Add(b)
	assert.Equal(t, FileStatus{Path: "dir", Marked: 3, Total: 15}, sum)
	assert.InDelta(t, 20.0, sum.Ratio(), 0.0001)
	assert.Zero(t, FileStatus{}.Ratio())
}

func TestAnnotate(t *testing.T) {
	lines, err := Annotate([]string{"a", "b", "c"}, Partial(Line(1)))
	require.NoError(t, err)

	assert.Equal(t, []SourceLine{
		{Offset: 0, Text: "a"},
		{Offset: 1, Text: "b", Marked: true},
		{Offset: 2, Text: "c"},
	}, lines)

	t.Run("too many lines", func(t *testing.T) {
		_, err := Annotate(make([]string, int(MaxLineOffset)+2), All())
		require.ErrorIs(t, err, ErrTooManyLines)
	})
}
