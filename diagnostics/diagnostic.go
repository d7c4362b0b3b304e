// Package diagnostics defines the diagnostic data model for the purets
// checker and the sink that collects diagnostics while honoring suppression
// directives.
package diagnostics

import (
	"fmt"
	"sort"
	"strings"
)

// Span is a half-open byte range [Start, End) into source text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Diagnostic is one reported rule violation. Diagnostics are immutable once
// created; their ordering is emission order, not position order.
type Diagnostic struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Span    Span   `json:"span"`
}

// Position is a 1-based line and column in source text.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:col".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineTable maps byte offsets to line/column positions using a precomputed
// table of line start offsets.
type LineTable struct {
	source string
	starts []int
}

// NewLineTable builds a line table for the given source text.
func NewLineTable(source string) *LineTable {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineTable{source: source, starts: starts}
}

// PositionFor converts a byte offset into a 1-based position. Offsets past
// the end of the source resolve to the final position.
func (t *LineTable) PositionFor(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.source) {
		offset = len(t.source)
	}
	// Find the last line start at or before offset.
	i := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > offset }) - 1
	return Position{Line: i + 1, Column: offset - t.starts[i] + 1}
}

// Line returns the text of the given 1-based line, without its newline.
func (t *LineTable) Line(line int) string {
	if line < 1 || line > len(t.starts) {
		return ""
	}
	start := t.starts[line-1]
	end := len(t.source)
	if line < len(t.starts) {
		end = t.starts[line] - 1
	}
	return strings.TrimSuffix(t.source[start:end], "\r")
}

// LineCount returns the number of lines in the source.
func (t *LineTable) LineCount() int {
	return len(t.starts)
}
