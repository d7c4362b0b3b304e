package checker

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mizchi/purets-linter-sub000/rules"
)

// checkDeclarator handles one variable declarator: it records the binding
// for unused-variable analysis, registers array candidates, and applies the
// declaration typing rules.
func (c *Checker) checkDeclarator(n *sitter.Node) {
	name := n.ChildByFieldName(fieldName)
	if name != nil && name.Type() == kindIdentifier {
		c.state.declare(c.text(name), spanOf(name))
	}

	c.trackArrayDeclarator(n)

	typeNode := declaratorType(n)
	value := n.ChildByFieldName(fieldValue)

	// Empty array literals carry no element type; require an annotation.
	if typeNode == nil && value != nil && value.Type() == kindArray && value.NamedChildCount() == 0 {
		c.addError(rules.RequireArrayType,
			"Empty array literals require a type annotation", n)
	}

	// A Record type over an empty object literal says nothing about the
	// keys; use a Map or a concrete shape.
	if typeNode != nil && typeNode.Type() == kindGenericType &&
		genericTypeName(typeNode, c.source) == "Record" &&
		value != nil && value.Type() == kindObject && value.NamedChildCount() == 0 {
		c.addError(rules.NoRecordObject,
			"'Record' typed as an empty object literal is not allowed; use 'Map'", n)
	}
}

// checkLexicalDeclaration flags `let` bindings that carry neither a type
// annotation nor an initializer, leaving the variable implicitly any.
func (c *Checker) checkLexicalDeclaration(n *sitter.Node) {
	if declKind(n, c.source) != "let" {
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		d := n.NamedChild(i)
		if d.Type() != kindVariableDeclarator {
			continue
		}
		if d.ChildByFieldName(fieldType) == nil && d.ChildByFieldName(fieldValue) == nil {
			c.addError(rules.RequireLetType,
				"'let' without an initializer requires a type annotation", d)
		}
	}
}

// declKind returns "let" or "const" for a lexical declaration.
func declKind(n *sitter.Node, source []byte) string {
	if kind := n.ChildByFieldName(fieldKind); kind != nil {
		return kind.Content(source)
	}
	if first := n.Child(0); first != nil {
		return first.Content(source)
	}
	return ""
}

// isFunctionValue reports whether the node is a function or arrow expression.
func isFunctionValue(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case kindArrowFunction, kindFunctionExpression, kindFunctionKeyword, kindGeneratorFunction:
		return true
	}
	return false
}

// describeDeclarator renders a short label for diagnostics about a binding.
func (c *Checker) describeDeclarator(d *sitter.Node) string {
	name := d.ChildByFieldName(fieldName)
	if name == nil {
		return "binding"
	}
	return fmt.Sprintf("'%s'", c.text(name))
}
