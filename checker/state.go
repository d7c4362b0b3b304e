package checker

import (
	"github.com/mizchi/purets-linter-sub000/diagnostics"
)

// exportedFunction is a function-like export recorded by the pre-pass.
type exportedFunction struct {
	name    string
	span    diagnostics.Span
	isAsync bool
}

// exportedSymbol is a non-function export recorded by the pre-pass.
type exportedSymbol struct {
	name string
	span diagnostics.Span
}

// visitorState is the cross-cutting mutable state threaded through one
// file's traversal. It is created fresh per file and discarded after the
// post-pass. Scope flags are saved and restored around scope-entering nodes
// so nested functions observe correct scoping.
type visitorState struct {
	inFunction         bool
	inCatchBlock       bool
	currentCatchParam  string
	inDefaultParameter bool
	isErrorFile        bool

	exportedFunctions []exportedFunction
	exportedOther     []exportedSymbol
	topLevelFunctions map[string]bool

	declaredVars map[string]diagnostics.Span
	declOrder    []string
	usedVars     map[string]bool

	// arrayVars maps a tracked array name to its declaration span. A name
	// leaves the readonly-candidate set exactly when a mutating call or an
	// indexed assignment targeting it is observed; reporting is deferred to
	// the post-pass.
	arrayVars      map[string]diagnostics.Span
	arrayOrder     []string
	mutatedArrays  map[string]bool
	readonlyArrays map[string]bool

	importedProcessNames map[string]bool
}

func newVisitorState() *visitorState {
	return &visitorState{
		topLevelFunctions:    make(map[string]bool),
		declaredVars:         make(map[string]diagnostics.Span),
		usedVars:             make(map[string]bool),
		arrayVars:            make(map[string]diagnostics.Span),
		mutatedArrays:        make(map[string]bool),
		readonlyArrays:       make(map[string]bool),
		importedProcessNames: make(map[string]bool),
	}
}

// declare records a variable or import binding for unused-variable analysis.
// The first declaration of a name wins.
func (s *visitorState) declare(name string, span diagnostics.Span) {
	if _, ok := s.declaredVars[name]; ok {
		return
	}
	s.declaredVars[name] = span
	s.declOrder = append(s.declOrder, name)
}

// trackArray registers a name as a readonly candidate.
func (s *visitorState) trackArray(name string, span diagnostics.Span) {
	if _, ok := s.arrayVars[name]; ok {
		return
	}
	s.arrayVars[name] = span
	s.arrayOrder = append(s.arrayOrder, name)
}
