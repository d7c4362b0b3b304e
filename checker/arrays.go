package checker

import (
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mizchi/purets-linter-sub000/rules"
)

// arrayMutators are the Array.prototype methods that disqualify a tracked
// array from readonly reporting.
var arrayMutators = map[string]bool{
	"push":       true,
	"pop":        true,
	"shift":      true,
	"unshift":    true,
	"splice":     true,
	"sort":       true,
	"reverse":    true,
	"fill":       true,
	"copyWithin": true,
}

// trackArrayDeclarator registers array-typed or array-initialized bindings
// for the readonly post-pass. A variable is tracked when it is array-typed,
// array-literal-initialized without an annotation, or initialized through an
// Array constructor or static call. ReadonlyArray-typed bindings are already
// readonly and are never reported.
func (c *Checker) trackArrayDeclarator(n *sitter.Node) {
	name := n.ChildByFieldName(fieldName)
	if name == nil || name.Type() != kindIdentifier {
		return
	}
	varName := c.text(name)
	span := spanOf(name)

	value := n.ChildByFieldName(fieldValue)
	if typeNode := declaratorType(n); typeNode != nil {
		switch typeNode.Type() {
		case kindArrayType:
			c.state.trackArray(varName, span)
		case kindGenericType:
			switch genericTypeName(typeNode, c.source) {
			case "Array":
				c.state.trackArray(varName, span)
			case "ReadonlyArray":
				c.state.readonlyArrays[varName] = true
			}
		case kindReadonlyType:
			c.state.readonlyArrays[varName] = true
		}
		return
	}

	if value == nil {
		return
	}
	switch value.Type() {
	case kindArray:
		c.state.trackArray(varName, span)
	case kindCallExpression:
		callee := value.ChildByFieldName(fieldFunction)
		if callee != nil && strings.HasPrefix(c.text(callee), "Array") {
			c.state.trackArray(varName, span)
		}
	case kindNewExpression:
		ctor := value.ChildByFieldName(fieldConstructor)
		if ctor != nil && strings.HasPrefix(c.text(ctor), "Array") {
			c.state.trackArray(varName, span)
		}
	}
}

// markArrayMutation moves a tracked array out of the readonly-candidate set
// when a mutating method is invoked on it.
func (c *Checker) markArrayMutation(objName, propName string) {
	if arrayMutators[propName] {
		c.state.mutatedArrays[objName] = true
	}
}

// checkSubscriptAccess flags computed member access unless the index is a
// numeric literal or a string literal parseable as an integer.
func (c *Checker) checkSubscriptAccess(n *sitter.Node) {
	index := n.ChildByFieldName(fieldIndex)
	if index == nil || isArrayIndex(index, c.source) {
		return
	}
	c.addError(rules.NoDynamicAccess,
		fmt.Sprintf("Dynamic member access '[%s]' is not allowed", c.text(index)), n)
}

// checkAssignment flags member and indexed assignment, and records indexed
// assignments as array mutations. Files under errors/ are exempt from the
// member-assignment ban so error classes can initialize fields.
func (c *Checker) checkAssignment(n *sitter.Node) {
	left := n.ChildByFieldName(fieldLeft)
	if left == nil {
		return
	}
	switch left.Type() {
	case kindMemberExpression:
		if !c.state.isErrorFile {
			c.addError(rules.NoMemberAssign,
				fmt.Sprintf("Assignment to member '%s' is not allowed", c.text(left)), n)
		}
	case kindSubscriptExpression:
		if object := left.ChildByFieldName(fieldObject); object != nil && object.Type() == kindIdentifier {
			c.state.mutatedArrays[c.text(object)] = true
		}
		if !c.state.isErrorFile {
			c.addError(rules.NoMemberAssign,
				fmt.Sprintf("Assignment to member '%s' is not allowed", c.text(left)), n)
		}
	}
}

// reportUnmutatedArrays emits the deferred readonly diagnostics. This runs
// only after the full traversal so mutations later in the file are seen.
func (c *Checker) reportUnmutatedArrays() {
	for _, name := range c.state.arrayOrder {
		if c.state.mutatedArrays[name] || c.state.readonlyArrays[name] {
			continue
		}
		c.sink.AddError(rules.PreferReadonlyArray,
			fmt.Sprintf("Array '%s' is never mutated; declare it as 'ReadonlyArray<T>'", name),
			c.state.arrayVars[name])
	}
}

// declaratorType returns the inner type node of a declarator's annotation.
func declaratorType(n *sitter.Node) *sitter.Node {
	ann := n.ChildByFieldName(fieldType)
	if ann == nil {
		return nil
	}
	if ann.Type() == kindTypeAnnotation {
		return ann.NamedChild(0)
	}
	return ann
}

// genericTypeName returns the base name of a generic type like Array<T>.
func genericTypeName(n *sitter.Node, source []byte) string {
	base := n.NamedChild(0)
	if base == nil {
		return ""
	}
	return base.Content(source)
}

// isArrayIndex reports whether the node is a numeric literal or a string
// literal whose content parses as an integer.
func isArrayIndex(n *sitter.Node, source []byte) bool {
	switch n.Type() {
	case kindNumber:
		return true
	case kindString:
		content := strings.Trim(n.Content(source), "\"'`")
		_, err := strconv.Atoi(content)
		return err == nil
	}
	return false
}
