package checker

import (
	"fmt"
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mizchi/purets-linter-sub000/rules"
)

// nodeBuiltins are the Node.js built-in modules that must be imported with
// the node: prefix.
var nodeBuiltins = map[string]bool{
	"assert":         true,
	"buffer":         true,
	"child_process":  true,
	"crypto":         true,
	"dns":            true,
	"events":         true,
	"fs":             true,
	"http":           true,
	"https":          true,
	"net":            true,
	"os":             true,
	"path":           true,
	"process":        true,
	"readline":       true,
	"stream":         true,
	"timers":         true,
	"tls":            true,
	"url":            true,
	"util":           true,
	"worker_threads": true,
	"zlib":           true,
}

// promiseCounterparts maps built-in modules to their promise-based variants,
// which must be preferred.
var promiseCounterparts = map[string]string{
	"fs":       "node:fs/promises",
	"dns":      "node:dns/promises",
	"stream":   "node:stream/promises",
	"timers":   "node:timers/promises",
	"readline": "node:readline/promises",
}

// forbiddenLibraries maps disallowed dependencies to suggested alternatives.
var forbiddenLibraries = map[string]string{
	"lodash":     "native array and object methods",
	"underscore": "native array and object methods",
	"moment":     "date-fns or the Temporal API",
	"axios":      "fetch",
	"jquery":     "native DOM APIs",
	"request":    "fetch",
}

// processModules are the sources whose bindings are recorded as process-like
// imports.
var processModules = map[string]bool{
	"process":      true,
	"node:process": true,
}

// checkImport applies the import hygiene rules to one import statement.
func (c *Checker) checkImport(n *sitter.Node) {
	src := c.importSource(n)
	if src == "" {
		return
	}

	if clause := firstNamedChildOfType(n, kindImportClause); clause != nil {
		if ns := firstNamedChildOfType(clause, kindNamespaceImport); ns != nil {
			c.addError(rules.NoNamespaceImport,
				fmt.Sprintf("Namespace import of '%s' is not allowed; use named imports", src), n)
		}
	}

	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		c.addError(rules.NoHTTPImport,
			fmt.Sprintf("Importing '%s' over HTTP(S) is not allowed", src), n)
		return
	case strings.HasPrefix(src, "."):
		if path.Ext(src) == "" {
			c.addError(rules.ImportExtension,
				fmt.Sprintf("Relative import '%s' requires an explicit extension", src), n)
		}
		return
	}

	bare := strings.TrimPrefix(src, "node:")
	root := moduleRoot(bare)

	if nodeBuiltins[root] && !strings.HasPrefix(src, "node:") {
		c.addError(rules.NodePrefix,
			fmt.Sprintf("Import '%s' as 'node:%s'", src, src), n)
	}
	if promised, ok := promiseCounterparts[bare]; ok {
		c.addError(rules.PreferPromises,
			fmt.Sprintf("Prefer '%s' over '%s'", promised, src), n)
	}
	if alt, ok := forbiddenLibraries[root]; ok {
		c.addError(rules.NoBannedImport,
			fmt.Sprintf("'%s' is a forbidden dependency; use %s", root, alt), n)
	}
}

// checkRequireSource applies the forbidden-library table to require() calls.
func (c *Checker) checkRequireSource(call *sitter.Node) {
	args := call.ChildByFieldName(fieldArguments)
	if args == nil || args.NamedChildCount() == 0 {
		return
	}
	arg := args.NamedChild(0)
	if arg.Type() != kindString {
		return
	}
	src := stringContent(arg, c.source)
	if alt, ok := forbiddenLibraries[moduleRoot(src)]; ok {
		c.addError(rules.NoBannedImport,
			fmt.Sprintf("'%s' is a forbidden dependency; use %s", moduleRoot(src), alt), call)
	}
}

// recordImportBindings registers the names an import statement binds, for
// unused-import analysis, and tracks bindings from process-like modules.
func (c *Checker) recordImportBindings(n *sitter.Node) {
	src := c.importSource(n)
	fromProcess := processModules[src]

	clause := firstNamedChildOfType(n, kindImportClause)
	if clause == nil {
		return
	}
	record := func(name *sitter.Node) {
		text := c.text(name)
		c.state.declare(text, spanOf(name))
		if fromProcess {
			c.state.importedProcessNames[text] = true
		}
	}
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		ch := clause.NamedChild(i)
		switch ch.Type() {
		case kindIdentifier: // default import
			record(ch)
		case kindNamespaceImport:
			if alias := lastNamedChildOfType(ch, kindIdentifier); alias != nil {
				record(alias)
			}
		case kindNamedImports:
			for j := 0; j < int(ch.NamedChildCount()); j++ {
				spec := ch.NamedChild(j)
				if spec.Type() != kindImportSpecifier {
					continue
				}
				name := spec.ChildByFieldName(fieldAlias)
				if name == nil {
					name = spec.ChildByFieldName(fieldName)
				}
				if name != nil {
					record(name)
				}
			}
		}
	}
}

// importSource returns the unquoted module source of an import statement.
func (c *Checker) importSource(n *sitter.Node) string {
	src := n.ChildByFieldName(fieldSource)
	if src == nil {
		return ""
	}
	return stringContent(src, c.source)
}

// moduleRoot returns the package part of a module source: the first path
// segment, or the first two for a scoped package.
func moduleRoot(src string) string {
	parts := strings.Split(src, "/")
	if strings.HasPrefix(src, "@") && len(parts) >= 2 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}

// stringContent returns a string literal's text without its quotes.
func stringContent(n *sitter.Node, source []byte) string {
	return strings.Trim(n.Content(source), "\"'`")
}

func firstNamedChildOfType(n *sitter.Node, kind string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if ch := n.NamedChild(i); ch.Type() == kind {
			return ch
		}
	}
	return nil
}

func lastNamedChildOfType(n *sitter.Node, kind string) *sitter.Node {
	var found *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if ch := n.NamedChild(i); ch.Type() == kind {
			found = ch
		}
	}
	return found
}
