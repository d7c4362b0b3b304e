package checker

import (
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mizchi/purets-linter-sub000/rules"
)

var paramTagPattern = regexp.MustCompile(`@param\s+(?:\{[^}]*\}\s*)?\[?([A-Za-z_$][\w$]*)`)

// checkExportedFunctionDocs enforces the JSDoc contract on an exported
// function: an immediately preceding documentation block whose @param tags
// correspond 1:1 by name to the declared parameters. Parameters lacking a
// type annotation are flagged independent of documentation.
func (c *Checker) checkExportedFunctionDocs(export, name, params *sitter.Node) {
	label := "exported function"
	if name != nil {
		label = fmt.Sprintf("exported function '%s'", c.text(name))
	}

	doc, ok := c.precedingDocComment(export)
	if !ok {
		c.addError(rules.RequireJSDoc,
			fmt.Sprintf("Missing JSDoc comment on %s", label), export)
	} else if params != nil {
		c.checkParamTags(export, doc, params)
	}

	if params == nil {
		return
	}
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		switch p.Type() {
		case kindRequiredParameter, kindOptionalParameter:
			if p.ChildByFieldName(fieldType) == nil {
				c.addError(rules.RequireParamType,
					fmt.Sprintf("Parameter '%s' requires a type annotation", c.paramName(p)), p)
			}
		}
	}
}

// checkParamTags compares the doc block's @param names against the declared
// parameter names, position by position.
func (c *Checker) checkParamTags(export *sitter.Node, doc string, params *sitter.Node) {
	var tags []string
	for _, m := range paramTagPattern.FindAllStringSubmatch(doc, -1) {
		tags = append(tags, m[1])
	}
	var names []string
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		switch p.Type() {
		case kindRequiredParameter, kindOptionalParameter:
			names = append(names, c.paramName(p))
		}
	}

	for i := 0; i < len(tags) || i < len(names); i++ {
		switch {
		case i >= len(names):
			c.addError(rules.JSDocParams,
				fmt.Sprintf("JSDoc '@param %s' has no matching parameter", tags[i]), export)
		case i >= len(tags):
			c.addError(rules.JSDocParams,
				fmt.Sprintf("Parameter '%s' is missing a JSDoc @param tag", names[i]), export)
		case tags[i] != names[i]:
			c.addError(rules.JSDocParams,
				fmt.Sprintf("JSDoc '@param %s' does not match parameter '%s'", tags[i], names[i]), export)
		}
	}
}

// paramName returns the declared name of a parameter, or its source text for
// destructuring patterns.
func (c *Checker) paramName(p *sitter.Node) string {
	if pattern := p.ChildByFieldName(fieldPattern); pattern != nil {
		return c.text(pattern)
	}
	return c.text(p)
}

// precedingDocComment returns the documentation block ending on the line
// directly above the node, if any.
func (c *Checker) precedingDocComment(n *sitter.Node) (string, bool) {
	prev := n.PrevNamedSibling()
	if prev == nil || prev.Type() != kindComment {
		return "", false
	}
	text := c.text(prev)
	if !strings.HasPrefix(text, "/**") {
		return "", false
	}
	if prev.EndPoint().Row+1 != n.StartPoint().Row {
		return "", false
	}
	return text, true
}
