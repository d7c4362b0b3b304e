package checker

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mizchi/purets-linter-sub000/diagnostics"
	"github.com/mizchi/purets-linter-sub000/rules"
)

// prePass scans top-level statements only: it classifies every export into
// function-like versus other, and records import bindings, including those
// from process-like modules.
func (c *Checker) prePass(root *sitter.Node) {
	// First collect top-level function-like names so that `export { name }`
	// clauses can be classified.
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		target := stmt
		if stmt.Type() == kindExportStatement {
			if decl := stmt.ChildByFieldName(fieldDeclaration); decl != nil {
				target = decl
			}
		}
		c.collectFunctionNames(target)
	}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		switch stmt.Type() {
		case kindImportStatement:
			c.recordImportBindings(stmt)
		case kindExportStatement:
			c.classifyExport(stmt)
		}
	}
}

func (c *Checker) collectFunctionNames(n *sitter.Node) {
	switch n.Type() {
	case kindFunctionDeclaration, kindGeneratorFunction:
		if name := n.ChildByFieldName(fieldName); name != nil {
			c.state.topLevelFunctions[c.text(name)] = true
		}
	case kindLexicalDeclaration:
		for i := 0; i < int(n.NamedChildCount()); i++ {
			d := n.NamedChild(i)
			if d.Type() != kindVariableDeclarator {
				continue
			}
			if isFunctionValue(d.ChildByFieldName(fieldValue)) {
				if name := d.ChildByFieldName(fieldName); name != nil {
					c.state.topLevelFunctions[c.text(name)] = true
				}
			}
		}
	}
}

// classifyExport sorts one top-level export into the function-like or other
// bucket. Type-only exports (interfaces, type aliases) belong to neither.
// Exported names count as used for the unused-variable post-pass.
func (c *Checker) classifyExport(n *sitter.Node) {
	if n.ChildByFieldName(fieldSource) != nil {
		// Re-exports are handled during the walk.
		return
	}

	if decl := n.ChildByFieldName(fieldDeclaration); decl != nil {
		switch decl.Type() {
		case kindFunctionDeclaration, kindGeneratorFunction:
			// Anonymous default-exported functions carry no name field.
			fn := exportedFunction{
				name:    "default",
				span:    spanOf(decl),
				isAsync: hasAsyncModifier(decl),
			}
			if name := decl.ChildByFieldName(fieldName); name != nil {
				fn.name = c.text(name)
				fn.span = spanOf(name)
			}
			c.addExportedFunction(fn)
		case kindLexicalDeclaration:
			for i := 0; i < int(decl.NamedChildCount()); i++ {
				d := decl.NamedChild(i)
				if d.Type() != kindVariableDeclarator {
					continue
				}
				name := d.ChildByFieldName(fieldName)
				if name == nil {
					continue
				}
				if value := d.ChildByFieldName(fieldValue); isFunctionValue(value) {
					c.addExportedFunction(exportedFunction{
						name:    c.text(name),
						span:    spanOf(name),
						isAsync: hasAsyncModifier(value),
					})
				} else {
					c.addExportedOther(exportedSymbol{
						name: c.text(name),
						span: spanOf(name),
					})
				}
			}
		case kindClassDeclaration, kindAbstractClass, kindEnumDeclaration,
			kindVariableDeclaration:
			if name := decl.ChildByFieldName(fieldName); name != nil {
				c.addExportedOther(exportedSymbol{
					name: c.text(name),
					span: spanOf(name),
				})
			}
		case kindInterfaceDeclaration, kindTypeAliasDeclaration:
			// Type-only exports are always permitted.
		}
		return
	}

	// `export default <expr>` carries the expression in the value field.
	if value := n.ChildByFieldName(fieldValue); value != nil {
		if isFunctionValue(value) {
			c.addExportedFunction(exportedFunction{
				name:    "default",
				span:    spanOf(value),
				isAsync: hasAsyncModifier(value),
			})
			return
		}
		if value.Type() == kindIdentifier && c.state.topLevelFunctions[c.text(value)] {
			c.addExportedFunction(exportedFunction{
				name: c.text(value),
				span: spanOf(value),
			})
			return
		}
		c.addExportedOther(exportedSymbol{name: "default", span: spanOf(value)})
		return
	}

	if clause := firstNamedChildOfType(n, kindExportClause); clause != nil {
		for i := 0; i < int(clause.NamedChildCount()); i++ {
			spec := clause.NamedChild(i)
			if spec.Type() != kindExportSpecifier {
				continue
			}
			name := spec.ChildByFieldName(fieldName)
			if name == nil {
				continue
			}
			sym := exportedSymbol{name: c.text(name), span: spanOf(name)}
			if c.state.topLevelFunctions[sym.name] {
				c.addExportedFunction(exportedFunction{name: sym.name, span: sym.span})
			} else {
				c.addExportedOther(sym)
			}
		}
	}
}

// addExportedFunction records a function-like export. Exported names are
// considered used.
func (c *Checker) addExportedFunction(fn exportedFunction) {
	c.state.exportedFunctions = append(c.state.exportedFunctions, fn)
	c.state.usedVars[fn.name] = true
}

// addExportedOther records a non-function export.
func (c *Checker) addExportedOther(sym exportedSymbol) {
	c.state.exportedOther = append(c.state.exportedOther, sym)
	c.state.usedVars[sym.name] = true
}

// checkExport applies the walk-time export rules: re-export policy,
// exported declaration typing, and the JSDoc contract.
func (c *Checker) checkExport(n *sitter.Node) {
	if n.ChildByFieldName(fieldSource) != nil {
		if c.isNamespaceReexport(n) && !c.entryFile {
			c.addError(rules.NoReexport,
				"Namespace re-exports are only allowed in entry files", n)
		}
		return
	}

	decl := n.ChildByFieldName(fieldDeclaration)
	if decl == nil {
		return
	}
	switch decl.Type() {
	case kindFunctionDeclaration, kindGeneratorFunction:
		c.checkExportedFunctionDocs(n, decl.ChildByFieldName(fieldName), decl.ChildByFieldName(fieldParameters))
	case kindLexicalDeclaration:
		kind := declKind(decl, c.source)
		for i := 0; i < int(decl.NamedChildCount()); i++ {
			d := decl.NamedChild(i)
			if d.Type() != kindVariableDeclarator {
				continue
			}
			value := d.ChildByFieldName(fieldValue)
			if kind == "let" {
				c.addError(rules.NoExportLet,
					fmt.Sprintf("Exported 'let' %s is not allowed; export 'const'", c.describeDeclarator(d)), d)
				continue
			}
			if isFunctionValue(value) {
				c.checkExportedFunctionDocs(n, d.ChildByFieldName(fieldName), value.ChildByFieldName(fieldParameters))
				continue
			}
			if d.ChildByFieldName(fieldType) == nil {
				c.addError(rules.RequireExportType,
					fmt.Sprintf("Exported 'const' %s requires a type annotation", c.describeDeclarator(d)), d)
			}
		}
	}
}

// isNamespaceReexport reports whether the export statement is of the form
// `export * from ...` or `export * as ns from ...`.
func (c *Checker) isNamespaceReexport(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		switch n.Child(i).Type() {
		case "*", kindNamespaceExport:
			return true
		}
	}
	return false
}

// postPass runs after the full traversal: declared-but-unused bindings, the
// one-public-function contract, deferred array mutability reporting, and
// unused allow directives.
func (c *Checker) postPass() {
	for _, name := range c.state.declOrder {
		if c.state.usedVars[name] || strings.HasPrefix(name, "_") {
			continue
		}
		c.sink.AddError(rules.NoUnusedVars,
			fmt.Sprintf("'%s' is declared but never used", name),
			c.state.declaredVars[name])
	}

	if !c.entryFile {
		if fns := c.state.exportedFunctions; len(fns) > 1 {
			for _, fn := range fns[1:] {
				c.sink.AddError(rules.OnePublicFunction,
					fmt.Sprintf("Only one function may be exported per file; move '%s' to its own file", fn.name),
					fn.span)
			}
		}
		for _, sym := range c.state.exportedOther {
			c.sink.AddError(rules.OnePublicFunction,
				fmt.Sprintf("Only functions may be exported; '%s' is not a function", sym.name),
				sym.span)
		}
	}

	c.reportUnmutatedArrays()

	for _, feature := range c.gate.Unused() {
		c.sink.AddError(rules.UnusedAllowDirective,
			fmt.Sprintf("'@allow %s' is declared but never used", feature),
			diagnostics.Span{})
	}
}

// hasAsyncModifier reports whether a function node carries the async keyword.
func hasAsyncModifier(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "async" {
			return true
		}
	}
	return false
}
