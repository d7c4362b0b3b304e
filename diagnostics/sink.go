package diagnostics

import (
	"github.com/mizchi/purets-linter-sub000/directives"
)

// Sink collects diagnostics for one file's check, dropping those suppressed
// by disable directives or a disabled-rule set. It is owned exclusively by a
// single file's check and discarded afterward.
type Sink struct {
	path     string
	source   string
	lines    *LineTable
	suppress *directives.SuppressionIndex
	expect   *directives.ExpectErrorIndex
	disabled map[string]bool
	items    []Diagnostic
}

// NewSink creates a sink for the given file. The suppression index may be
// nil, in which case nothing is suppressed.
func NewSink(path, source string, suppress *directives.SuppressionIndex) *Sink {
	return &Sink{
		path:     path,
		source:   source,
		lines:    NewLineTable(source),
		suppress: suppress,
	}
}

// SetExpectErrors attaches an expect-error index. Expected diagnostics are
// marked triggered when they fire; they are still reported.
func (s *Sink) SetExpectErrors(idx *directives.ExpectErrorIndex) {
	s.expect = idx
}

// DisableRules drops all diagnostics carrying any of the given rule ids.
func (s *Sink) DisableRules(ids ...string) {
	if s.disabled == nil {
		s.disabled = make(map[string]bool, len(ids))
	}
	for _, id := range ids {
		s.disabled[id] = true
	}
}

// AddError records a diagnostic unless it is suppressed. The reported line
// is 1-based; the suppression index is 0-based, so the query is made at
// line-1. That offset must be kept in lockstep with the index builder or
// suppression silently misses by one line.
func (s *Sink) AddError(rule, message string, span Span) {
	line := s.lines.PositionFor(span.Start).Line
	if s.expect != nil && s.expect.IsExpected(line-1, rule) {
		s.expect.MarkTriggered(line-1, rule)
	}
	if s.disabled[rule] {
		return
	}
	if s.suppress != nil && s.suppress.IsRuleDisabled(line-1, rule) {
		return
	}
	s.items = append(s.items, Diagnostic{Rule: rule, Message: message, Span: span})
}

// Items returns the collected diagnostics in emission order. The returned
// slice aliases the sink's storage and must not be modified.
func (s *Sink) Items() []Diagnostic {
	return s.items
}

// Len returns the number of collected diagnostics.
func (s *Sink) Len() int {
	return len(s.items)
}

// Path returns the file path the sink was created for.
func (s *Sink) Path() string {
	return s.path
}

// Position resolves a byte offset to a 1-based position in the sink's source.
func (s *Sink) Position(offset int) Position {
	return s.lines.PositionFor(offset)
}

// Lines exposes the sink's line table for rendering.
func (s *Sink) Lines() *LineTable {
	return s.lines
}
