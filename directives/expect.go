package directives

import (
	"sort"
	"strings"
)

// Expectation pairs a 0-indexed line with the rule ids expected to fire there.
type Expectation struct {
	Line  int
	Rules []string
}

// ExpectErrorIndex records purets-expect-error annotations: declarations that
// the following line must trigger the listed rules. It is a self-test
// facility for rule corpora, not a suppression mechanism; expected
// diagnostics are still reported.
//
// The expected map is immutable after construction. The triggered map is a
// plain mutable field updated through MarkTriggered during rule evaluation;
// the index is owned by a single-threaded check, so no synchronization is
// needed.
type ExpectErrorIndex struct {
	expected  map[int][]string
	triggered map[int][]string
}

// ScanExpectedErrors scans source text for purets-expect-error directives.
// Each directive applies to the line that follows it.
func ScanExpectedErrors(source string) *ExpectErrorIndex {
	idx := &ExpectErrorIndex{
		expected:  make(map[int][]string),
		triggered: make(map[int][]string),
	}
	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.Contains(trimmed, markerExpectError) {
			continue
		}
		if names := ruleListAfter(trimmed, markerExpectError); len(names) > 0 {
			idx.expected[i+1] = names
		}
	}
	return idx
}

// IsExpected reports whether the given rule is declared as expected on the
// given 0-indexed line.
func (e *ExpectErrorIndex) IsExpected(line int, rule string) bool {
	return containsString(e.expected[line], rule)
}

// MarkTriggered records that the given rule fired on the given 0-indexed
// line. Append-only; callable during rule evaluation.
func (e *ExpectErrorIndex) MarkTriggered(line int, rule string) {
	e.triggered[line] = append(e.triggered[line], rule)
}

// Untriggered returns, ordered by line, every declared expectation whose
// rules were never marked triggered. An empty result means every declared
// (line, rule) pair actually fired.
func (e *ExpectErrorIndex) Untriggered() []Expectation {
	var out []Expectation
	for line, expected := range e.expected {
		var missing []string
		for _, rule := range expected {
			if !containsString(e.triggered[line], rule) {
				missing = append(missing, rule)
			}
		}
		if len(missing) > 0 {
			out = append(out, Expectation{Line: line, Rules: missing})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}

// Len returns the number of lines that carry expectations.
func (e *ExpectErrorIndex) Len() int {
	return len(e.expected)
}
