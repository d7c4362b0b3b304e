package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineTablePositions(t *testing.T) {
	table := NewLineTable("abc\nde\n\nfg")
	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 1, 4},
		{4, 2, 1},
		{6, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
		{9, 4, 2},
	}
	for _, tt := range tests {
		pos := table.PositionFor(tt.offset)
		require.Equal(t, tt.line, pos.Line, "offset %d", tt.offset)
		require.Equal(t, tt.column, pos.Column, "offset %d", tt.offset)
	}
}

func TestLineTableClamping(t *testing.T) {
	table := NewLineTable("ab\ncd")
	require.Equal(t, Position{Line: 1, Column: 1}, table.PositionFor(-5))
	require.Equal(t, Position{Line: 2, Column: 3}, table.PositionFor(100))
}

func TestLineTableLines(t *testing.T) {
	table := NewLineTable("first\nsecond\r\nthird")
	require.Equal(t, 3, table.LineCount())
	require.Equal(t, "first", table.Line(1))
	require.Equal(t, "second", table.Line(2))
	require.Equal(t, "third", table.Line(3))
	require.Equal(t, "", table.Line(0))
	require.Equal(t, "", table.Line(4))
}
