package checker

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mizchi/purets-linter-sub000/rules"
)

// objectStaticBans maps banned Object static methods to their rule ids.
var objectStaticBans = map[string]string{
	"assign":           rules.NoObjectAssign,
	"defineProperty":   rules.NoDefineProperty,
	"defineProperties": rules.NoDefineProperty,
}

// checkUnary flags delete expressions.
func (c *Checker) checkUnary(n *sitter.Node) {
	op := n.ChildByFieldName(fieldOperator)
	if op != nil && c.text(op) == "delete" {
		c.addError(rules.NoDelete, "The 'delete' operator is not allowed", n)
	}
}

// checkAccessors flags getter and setter definitions. The get/set keyword
// appears before the method name.
func (c *Checker) checkAccessors(n *sitter.Node) {
	name := n.ChildByFieldName(fieldName)
	for i := 0; i < int(n.ChildCount()); i++ {
		ch := n.Child(i)
		if name != nil && ch.StartByte() >= name.StartByte() {
			break
		}
		if t := ch.Type(); t == "get" || t == "set" {
			c.addError(rules.NoAccessors, "Getters and setters are not allowed", n)
			return
		}
	}
}

// checkCall applies every call-expression rule: banned calls, feature
// gating, side-effect isolation, array mutation tracking, and forbidden
// libraries loaded through require().
func (c *Checker) checkCall(n *sitter.Node) {
	callee := n.ChildByFieldName(fieldFunction)
	if callee == nil {
		return
	}

	switch callee.Type() {
	case kindIdentifier:
		name := c.text(callee)
		switch name {
		case "eval":
			c.addError(rules.NoEval, "'eval' is not allowed", n)
		case "require":
			c.addError(rules.NoEval, "'require' is not allowed; use import statements", n)
			c.checkRequireSource(n)
		}
		if timerFunctions[name] {
			c.checkImpureCall(n, name)
		}

	case kindMemberExpression:
		object := callee.ChildByFieldName(fieldObject)
		property := callee.ChildByFieldName(fieldProperty)
		if object == nil || property == nil {
			return
		}
		propName := c.text(property)
		if propName == "forEach" {
			c.addError(rules.NoForEach, "'.forEach' is not allowed; use 'for...of'", n)
		}
		if object.Type() == kindIdentifier {
			objName := c.text(object)
			if objName == "Object" {
				if rule, ok := objectStaticBans[propName]; ok {
					c.addError(rule, fmt.Sprintf("'Object.%s' is not allowed", propName), n)
				}
			}
			if objName == "Math" && propName == "random" {
				c.checkImpureCall(n, "Math.random")
			}
			if objName == "Date" && propName == "now" {
				c.checkImpureCall(n, "Date.now")
			}
			c.markArrayMutation(objName, propName)
		}
	}
}

// checkNew flags `new Function(...)` and tracks `new Date()` as an impure
// call. Error-suffixed constructions are handled by checkThrow.
func (c *Checker) checkNew(n *sitter.Node) {
	ctor := n.ChildByFieldName(fieldConstructor)
	if ctor == nil || ctor.Type() != kindIdentifier {
		return
	}
	switch c.text(ctor) {
	case "Function":
		c.addError(rules.NoEval, "'new Function' is not allowed", n)
	case "Date":
		c.checkImpureCall(n, "new Date")
	}
}

// checkAsExpression flags `as` casts except `as const`.
func (c *Checker) checkAsExpression(n *sitter.Node) {
	last := n.Child(int(n.ChildCount()) - 1)
	if last != nil && c.text(last) == "const" {
		return
	}
	c.addError(rules.NoAsCast, "'as' type assertions are not allowed (except 'as const')", n)
}

// checkInterface flags interfaces that do not extend anything; a plain
// object shape belongs in a type alias.
func (c *Checker) checkInterface(n *sitter.Node) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if strings.Contains(n.NamedChild(i).Type(), "extends") {
			return
		}
	}
	name := n.ChildByFieldName(fieldName)
	label := "interface"
	if name != nil {
		label = fmt.Sprintf("interface '%s'", c.text(name))
	}
	c.addError(rules.InterfaceExtends,
		fmt.Sprintf("Use a type alias instead of %s without an 'extends' clause", label), n)
}

// checkConstantCondition flags if/while statements whose condition is a
// boolean literal. Nested statements are checked at any depth.
func (c *Checker) checkConstantCondition(n *sitter.Node) {
	cond := n.ChildByFieldName(fieldCondition)
	if cond == nil {
		return
	}
	inner := cond
	if cond.Type() == kindParenthesized {
		inner = cond.NamedChild(0)
	}
	if inner == nil {
		return
	}
	if t := inner.Type(); t == kindTrue || t == kindFalse {
		c.addError(rules.NoConstantCondition,
			fmt.Sprintf("Constant condition '%s' is not allowed", c.text(inner)), n)
	}
}

// checkSwitchCase flags non-block case bodies holding more than a single
// statement. A trailing break does not count toward the limit.
func (c *Checker) checkSwitchCase(n *sitter.Node) {
	var stmts []*sitter.Node
	start := 0
	if n.Type() == kindSwitchCase {
		start = 1 // the first named child is the case value
	}
	for i := start; i < int(n.NamedChildCount()); i++ {
		stmts = append(stmts, n.NamedChild(i))
	}
	if len(stmts) == 0 {
		return
	}
	if len(stmts) == 1 && stmts[0].Type() == kindStatementBlock {
		return
	}
	count := len(stmts)
	if stmts[count-1].Type() == kindBreakStatement {
		count--
	}
	if count > 1 {
		c.addError(rules.SwitchCaseBlock,
			"Wrap multi-statement case bodies in a block", n)
	}
}

// checkThis flags `this` inside function bodies. Files under an errors/
// directory are exempt so constructor-style error classes can assign to
// this.
func (c *Checker) checkThis(n *sitter.Node) {
	if !c.state.inFunction || c.state.isErrorFile {
		return
	}
	c.addError(rules.NoThis, "'this' is not allowed in functions", n)
}

// checkMaxParams flags functions declaring more than two parameters.
func (c *Checker) checkMaxParams(n *sitter.Node) {
	params := n.ChildByFieldName(fieldParameters)
	if params == nil {
		// Arrow function with a single bare parameter.
		return
	}
	count := 0
	for i := 0; i < int(params.NamedChildCount()); i++ {
		switch params.NamedChild(i).Type() {
		case kindRequiredParameter, kindOptionalParameter:
			count++
		}
	}
	if count > 2 {
		c.addError(rules.MaxParams,
			fmt.Sprintf("Functions may take at most 2 parameters, got %d; pass an options object", count),
			params)
	}
}
