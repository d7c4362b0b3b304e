package checker

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mizchi/purets-linter-sub000/rules"
)

// testRunnerCalls maps a configured test runner to the registration
// functions it is allowed to invoke at the top level.
var testRunnerCalls = map[string]map[string]bool{
	"vitest": {"test": true, "it": true, "describe": true},
	"node":   {"test": true, "it": true, "describe": true},
	"bun":    {"test": true, "it": true, "describe": true},
	"deno":   {},
}

// checkTopLevelStatement flags top-level statements other than declarations,
// IIFEs, main() calls in entry files, and a configured test runner's
// registration calls. Test files skip this check entirely.
func (c *Checker) checkTopLevelStatement(n *sitter.Node) {
	if c.testFile {
		return
	}

	switch n.Type() {
	case kindImportStatement, kindExportStatement,
		kindLexicalDeclaration, kindVariableDeclaration,
		kindFunctionDeclaration, kindGeneratorFunction,
		kindTypeAliasDeclaration, kindInterfaceDeclaration,
		kindEnumDeclaration, kindClassDeclaration, kindAbstractClass,
		"ambient_declaration", "function_signature", "empty_statement":
		return

	case kindExpressionStatement:
		expr := n.NamedChild(0)
		if expr == nil {
			return
		}
		if expr.Type() == kindCallExpression && c.isAllowedTopLevelCall(expr) {
			return
		}
		c.addError(rules.NoTopLevelSideEffect,
			fmt.Sprintf("Top-level side effect '%s' is not allowed", summarize(c.text(expr))), n)

	case kindIfStatement:
		// The entry-guard pattern `if (import.meta.main) ...` and typeof
		// guards are permitted. Constant conditions are skipped here too:
		// they are already reported as no-constant-condition.
		if c.isGuardedTopLevelIf(n) {
			return
		}
		c.addError(rules.NoTopLevelSideEffect,
			"Top-level 'if' statements are not allowed", n)

	default:
		c.addError(rules.NoTopLevelSideEffect,
			"Top-level statements other than declarations are not allowed", n)
	}
}

// isGuardedTopLevelIf reports whether a top-level if is exempt: entry
// guards on import.meta, typeof guards, and boolean-literal conditions
// (reported separately as constant conditions).
func (c *Checker) isGuardedTopLevelIf(n *sitter.Node) bool {
	cond := n.ChildByFieldName(fieldCondition)
	if cond == nil {
		return false
	}
	text := c.text(cond)
	if strings.Contains(text, "import.meta") || strings.Contains(text, "typeof ") {
		return true
	}
	inner := cond
	if cond.Type() == kindParenthesized {
		inner = cond.NamedChild(0)
	}
	if inner != nil {
		if t := inner.Type(); t == kindTrue || t == kindFalse {
			return true
		}
	}
	return false
}

// isAllowedTopLevelCall reports whether a top-level call expression is one
// of the permitted forms: an IIFE, a main() call in an entry file, a call to
// a binding imported from a process-like module in an entry file, or a
// configured test runner's registration call.
func (c *Checker) isAllowedTopLevelCall(call *sitter.Node) bool {
	callee := call.ChildByFieldName(fieldFunction)
	if callee == nil {
		return false
	}

	switch callee.Type() {
	case kindParenthesized:
		if inner := callee.NamedChild(0); isFunctionValue(inner) {
			return true
		}
	case kindIdentifier:
		name := c.text(callee)
		if c.entryFile && (name == "main" || c.state.importedProcessNames[name]) {
			return true
		}
		if c.cfg.testRunner != "" && testRunnerCalls[c.cfg.testRunner][name] {
			return true
		}
	case kindMemberExpression:
		if c.cfg.testRunner == "deno" && c.text(callee) == "Deno.test" {
			return true
		}
	}
	return false
}

// summarize shortens an expression for use in a diagnostic message.
func summarize(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if len(text) > 40 {
		text = text[:40] + "..."
	}
	return text
}
