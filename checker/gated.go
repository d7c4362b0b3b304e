package checker

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mizchi/purets-linter-sub000/directives"
	"github.com/mizchi/purets-linter-sub000/rules"
)

// domGlobals are browser globals gated behind `@allow dom`.
var domGlobals = map[string]bool{
	"document":       true,
	"window":         true,
	"navigator":      true,
	"location":       true,
	"localStorage":   true,
	"sessionStorage": true,
	"history":        true,
	"screen":         true,
	"alert":          true,
	"confirm":        true,
	"prompt":         true,
}

// netGlobals are network globals and types gated behind `@allow net`.
var netGlobals = map[string]bool{
	"fetch":                     true,
	"XMLHttpRequest":            true,
	"WebSocket":                 true,
	"EventSource":               true,
	"ServiceWorker":             true,
	"Response":                  true,
	"Request":                   true,
	"Headers":                   true,
	"RequestInit":               true,
	"ServiceWorkerRegistration": true,
}

// timerFunctions are the scheduling functions gated behind `@allow timers`,
// including their cancel counterparts.
var timerFunctions = map[string]bool{
	"setTimeout":            true,
	"setInterval":           true,
	"setImmediate":          true,
	"requestAnimationFrame": true,
	"requestIdleCallback":   true,
	"clearTimeout":          true,
	"clearInterval":         true,
	"clearImmediate":        true,
	"cancelAnimationFrame":  true,
	"cancelIdleCallback":    true,
}

// checkIdentifier handles every bare identifier reference: usage tracking
// for the unused-variable post-pass, plus the allow-feature gate for
// console, DOM, network, and timer surfaces.
func (c *Checker) checkIdentifier(n *sitter.Node) {
	if c.isDeclarationName(n) {
		return
	}
	name := c.text(n)
	c.state.usedVars[name] = true

	switch {
	case name == "console":
		c.requireFeature(directives.FeatureConsole, n, name)
	case domGlobals[name]:
		c.requireFeature(directives.FeatureDOM, n, name)
	case netGlobals[name]:
		c.requireFeature(directives.FeatureNet, n, name)
	case timerFunctions[name]:
		c.requireFeature(directives.FeatureTimers, n, name)
	}
}

// checkTypeIdentifier gates type references to network types such as
// Response or RequestInit.
func (c *Checker) checkTypeIdentifier(n *sitter.Node) {
	name := c.text(n)
	if netGlobals[name] {
		c.requireFeature(directives.FeatureNet, n, name)
	}
}

// requireFeature checks a gated surface against the allow gate: granted
// features are marked used, ungranted ones produce a diagnostic naming the
// required grant.
func (c *Checker) requireFeature(feature string, n *sitter.Node, surface string) {
	if c.gate.Allowed(feature) {
		return
	}
	c.addError(rules.AllowDirectives,
		fmt.Sprintf("'%s' requires '@allow %s' in the file's leading doc comment", surface, feature), n)
}

// checkImpureCall flags non-deterministic calls inside function bodies.
// Default parameter expressions are exempt: they are evaluated at call time
// and act as injected dependencies.
func (c *Checker) checkImpureCall(n *sitter.Node, surface string) {
	if !c.state.inFunction || c.state.inDefaultParameter {
		return
	}
	c.addError(rules.NoImpureCalls,
		fmt.Sprintf("'%s' is not allowed inside functions; inject it via a default parameter", surface), n)
}

// checkThrow enforces the throw policy: throwing at all requires
// `@allow throws`, and a granted throw must construct an Error-suffixed
// class or rethrow the caught error.
func (c *Checker) checkThrow(n *sitter.Node) {
	if !c.gate.Allowed(directives.FeatureThrows) {
		c.addError(rules.AllowDirectives,
			"'throw' requires '@allow throws' in the file's leading doc comment", n)
		return
	}
	arg := n.NamedChild(0)
	if arg == nil {
		c.addError(rules.NoThrow, "'throw' requires an Error instance", n)
		return
	}
	switch arg.Type() {
	case kindNewExpression:
		ctor := arg.ChildByFieldName(fieldConstructor)
		if ctor != nil && ctor.Type() == kindIdentifier && strings.HasSuffix(c.text(ctor), "Error") {
			return
		}
	case kindIdentifier:
		if c.state.inCatchBlock && c.text(arg) == c.state.currentCatchParam {
			return
		}
	}
	c.addError(rules.NoThrow,
		"Only 'throw new SomeError(...)' or rethrowing the caught error is allowed", n)
}

// isDeclarationName reports whether the identifier is the name being bound
// by a declaration rather than a reference to an existing binding.
func (c *Checker) isDeclarationName(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case kindVariableDeclarator, kindFunctionDeclaration, kindGeneratorFunction,
		kindFunctionExpression, kindFunctionKeyword, kindClassDeclaration,
		kindTypeAliasDeclaration, kindEnumDeclaration, kindInterfaceDeclaration:
		name := parent.ChildByFieldName(fieldName)
		return name != nil && name.StartByte() == n.StartByte()
	case kindRequiredParameter, kindOptionalParameter:
		pattern := parent.ChildByFieldName(fieldPattern)
		return pattern != nil && pattern.StartByte() == n.StartByte()
	case kindArrowFunction:
		param := parent.ChildByFieldName(fieldParameter)
		return param != nil && param.StartByte() == n.StartByte()
	case kindImportSpecifier, kindNamespaceImport, kindImportClause:
		return true
	case kindCatchClause:
		param := parent.ChildByFieldName(fieldParameter)
		return param != nil && param.StartByte() == n.StartByte()
	}
	return false
}
