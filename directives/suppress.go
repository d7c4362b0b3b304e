// Package directives implements the source-embedded directive scanners used
// by the purets checker: diagnostic suppression comments, expect-error
// annotations for the rule corpus, and @allow feature grants.
//
// All scanners operate on raw source text with a plain substring scan over
// trimmed lines. This is deliberate: directives must be recognized even when
// the parser does not classify the surrounding text as a conventional
// comment. Lines are 0-indexed throughout this package.
package directives

import "strings"

// Directive markers recognized in source text.
const (
	markerDisableFile     = "purets-disable-file"
	markerDisableNextLine = "purets-disable-next-line"
	markerDisableLine     = "purets-disable-line"
	markerExpectError     = "purets-expect-error"
)

// SuppressionIndex records which lines and rules have diagnostics suppressed
// by disable directives. It is built once per file before traversal and is
// read-only thereafter.
type SuppressionIndex struct {
	fileDisabled  bool
	disabledLines map[int]bool
	// ruleOverrides maps a line to the rule ids named after its disable
	// directive. A disabled line without an entry here is a blanket
	// suppression.
	ruleOverrides map[int][]string
}

// ScanSuppressions scans source text for purets-disable directives and
// returns the resulting index.
func ScanSuppressions(source string) *SuppressionIndex {
	idx := &SuppressionIndex{
		disabledLines: make(map[int]bool),
		ruleOverrides: make(map[int][]string),
	}
	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(trimmed, markerDisableFile) {
			idx.fileDisabled = true
			continue
		}
		// Check next-line before line: the next-line marker would otherwise
		// never match because it shares a prefix with the longer form.
		if strings.Contains(trimmed, markerDisableNextLine) {
			idx.record(i+1, ruleListAfter(trimmed, markerDisableNextLine))
			continue
		}
		if strings.Contains(trimmed, markerDisableLine) {
			idx.record(i, ruleListAfter(trimmed, markerDisableLine))
		}
	}
	return idx
}

func (s *SuppressionIndex) record(line int, ruleNames []string) {
	s.disabledLines[line] = true
	if len(ruleNames) > 0 {
		s.ruleOverrides[line] = ruleNames
	}
}

// FileDisabled reports whether a purets-disable-file directive was seen.
func (s *SuppressionIndex) FileDisabled() bool {
	return s.fileDisabled
}

// IsLineDisabled reports whether all diagnostics on the given 0-indexed line
// are suppressed.
func (s *SuppressionIndex) IsLineDisabled(line int) bool {
	return s.fileDisabled || s.disabledLines[line]
}

// IsRuleDisabled reports whether the given rule is suppressed on the given
// 0-indexed line. A disabled line without a named-rule list suppresses every
// rule; a named-rule list narrows the suppression to the listed rules. An
// override recorded without the line being marked disabled still matches its
// named rules.
func (s *SuppressionIndex) IsRuleDisabled(line int, rule string) bool {
	if s.fileDisabled {
		return true
	}
	override, hasOverride := s.ruleOverrides[line]
	if s.disabledLines[line] {
		if hasOverride && len(override) > 0 && !containsString(override, rule) {
			return false
		}
		return true
	}
	return hasOverride && containsString(override, rule)
}

// ruleListAfter extracts the comma/whitespace-separated rule names that
// follow a directive marker, stripping trailing comment-close tokens. An
// unparsable or empty list yields nil, which degrades to a blanket
// line suppression.
func ruleListAfter(line, marker string) []string {
	pos := strings.Index(line, marker)
	if pos < 0 {
		return nil
	}
	rest := line[pos+len(marker):]
	var names []string
	for _, tok := range splitRuleList(rest) {
		tok = strings.TrimSuffix(tok, "*/")
		if tok != "" {
			names = append(names, tok)
		}
	}
	return names
}

func splitRuleList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
