// Package checker implements the purets rule engine: a one-pass walk over a
// parsed TypeScript tree that applies the full rule catalogue while tracking
// scope, export classification, array mutability, and opt-in feature grants,
// and emits positioned diagnostics through a suppression-aware sink.
package checker

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mizchi/purets-linter-sub000/diagnostics"
	"github.com/mizchi/purets-linter-sub000/directives"
	"github.com/mizchi/purets-linter-sub000/parser"
	"github.com/mizchi/purets-linter-sub000/rules"
)

// Result holds the outcome of checking one file.
type Result struct {
	Path        string
	Diagnostics []diagnostics.Diagnostic
	// Untriggered lists purets-expect-error declarations that never fired.
	// Populated only when expect-error tracking is enabled.
	Untriggered []directives.Expectation

	sink *diagnostics.Sink
}

// Clean reports whether the file produced no diagnostics.
func (r *Result) Clean() bool {
	return len(r.Diagnostics) == 0
}

// Sink exposes the diagnostics sink for rendering.
func (r *Result) Sink() *diagnostics.Sink {
	return r.sink
}

// Checker evaluates the rule catalogue against one file. All of its mutable
// structures are owned by a single file's check; checking a file is a pure
// function of (path, source), so callers may check many files concurrently
// with separate Checker values.
type Checker struct {
	path   string
	source []byte
	cfg    *config

	sink   *diagnostics.Sink
	gate   *directives.Gate
	expect *directives.ExpectErrorIndex
	state  *visitorState

	entryFile bool
	testFile  bool
}

// Check parses and checks a single file.
func Check(ctx context.Context, path string, source []byte, opts ...Option) (*Result, error) {
	tree, err := parser.Parse(ctx, path, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	return CheckTree(path, source, tree.RootNode(), opts...)
}

// CheckTree checks a file given its already-parsed tree. Every diagnostic
// span lies within the provided source text.
func CheckTree(path string, source []byte, root *sitter.Node, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	src := string(source)
	sink := diagnostics.NewSink(path, src, directives.ScanSuppressions(src))
	if cfg.preset != "" {
		preset, ok := rules.LookupPreset(cfg.preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", cfg.preset)
		}
		sink.DisableRules(preset.Disabled...)
	}
	sink.DisableRules(cfg.disabledRules...)

	c := &Checker{
		path:      path,
		source:    source,
		cfg:       cfg,
		sink:      sink,
		gate:      directives.NewGate(src),
		state:     newVisitorState(),
		entryFile: cfg.entryFile || isEntryBasename(path),
		testFile:  isTestFile(path),
	}
	c.state.isErrorFile = hasPathSegment(path, "errors")

	if cfg.expectErrors {
		c.expect = directives.ScanExpectedErrors(src)
		sink.SetExpectErrors(c.expect)
	}

	c.prePass(root)
	c.walk(root)
	c.checkPathPolicy()
	c.postPass()

	result := &Result{
		Path:        path,
		Diagnostics: sink.Items(),
		sink:        sink,
	}
	if c.expect != nil {
		result.Untriggered = c.expect.Untriggered()
	}
	cfg.logger.Debug().
		Str("path", path).
		Int("diagnostics", len(result.Diagnostics)).
		Msg("check complete")
	return result, nil
}

// walk traverses the tree depth-first, dispatching rule checks at each node
// and maintaining scope flags around functions, catch clauses, and default
// parameter values.
func (c *Checker) walk(n *sitter.Node) {
	if n == nil || n.Type() == kindComment {
		return
	}
	c.dispatch(n)

	switch {
	case isFunctionKind(n.Type()):
		prev := c.state.inFunction
		c.state.inFunction = true
		c.walkChildren(n)
		c.state.inFunction = prev

	case n.Type() == kindCatchClause:
		prevIn, prevParam := c.state.inCatchBlock, c.state.currentCatchParam
		c.state.inCatchBlock = true
		if p := n.ChildByFieldName(fieldParameter); p != nil && p.Type() == kindIdentifier {
			c.state.currentCatchParam = c.text(p)
		}
		c.walkChildren(n)
		c.state.inCatchBlock, c.state.currentCatchParam = prevIn, prevParam

	case n.Type() == kindRequiredParameter || n.Type() == kindOptionalParameter:
		value := n.ChildByFieldName(fieldValue)
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if value != nil && child.StartByte() == value.StartByte() && child.EndByte() == value.EndByte() {
				prev := c.state.inDefaultParameter
				c.state.inDefaultParameter = true
				c.walk(child)
				c.state.inDefaultParameter = prev
			} else {
				c.walk(child)
			}
		}

	default:
		c.walkChildren(n)
	}
}

func (c *Checker) walkChildren(n *sitter.Node) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c.walk(n.NamedChild(i))
	}
}

// dispatch applies every rule check relevant to the node kind.
func (c *Checker) dispatch(n *sitter.Node) {
	if parent := n.Parent(); parent != nil && parent.Type() == kindProgram {
		c.checkTopLevelStatement(n)
	}

	switch n.Type() {
	case kindClassDeclaration, kindAbstractClass, kindClassExpression:
		c.addError(rules.NoClass, "Classes are not allowed", n)
	case kindEnumDeclaration:
		c.addError(rules.NoEnum, "Enums are not allowed; use a union of literals", n)
	case kindDoStatement:
		c.addError(rules.NoDoWhile, "'do/while' loops are not allowed", n)
	case kindUnaryExpression:
		c.checkUnary(n)
	case kindMethodDefinition:
		c.checkAccessors(n)
		c.checkMaxParams(n)
	case kindFunctionDeclaration, kindGeneratorFunction, kindFunctionExpression,
		kindFunctionKeyword, kindArrowFunction:
		c.checkMaxParams(n)
	case kindCallExpression:
		c.checkCall(n)
	case kindNewExpression:
		c.checkNew(n)
	case kindAssignmentExpression, kindAugmentedAssignment:
		c.checkAssignment(n)
	case kindSubscriptExpression:
		c.checkSubscriptAccess(n)
	case kindAsExpression:
		c.checkAsExpression(n)
	case kindTypeAssertion:
		c.addError(rules.NoAsCast, "Angle-bracket type assertions are not allowed", n)
	case kindInterfaceDeclaration:
		c.checkInterface(n)
	case kindVariableDeclarator:
		c.checkDeclarator(n)
	case kindLexicalDeclaration:
		c.checkLexicalDeclaration(n)
	case kindIfStatement, kindWhileStatement:
		c.checkConstantCondition(n)
	case kindSwitchCase, kindSwitchDefault:
		c.checkSwitchCase(n)
	case kindThrowStatement:
		c.checkThrow(n)
	case kindThis:
		c.checkThis(n)
	case kindIdentifier:
		c.checkIdentifier(n)
	case kindTypeIdentifier:
		c.checkTypeIdentifier(n)
	case kindShorthandProperty:
		c.state.usedVars[c.text(n)] = true
	case kindImportStatement:
		c.checkImport(n)
	case kindExportStatement:
		c.checkExport(n)
	}
}

// addError emits a diagnostic covering the given node.
func (c *Checker) addError(rule, message string, n *sitter.Node) {
	c.sink.AddError(rule, message, spanOf(n))
}

func (c *Checker) text(n *sitter.Node) string {
	return parser.Text(n, c.source)
}

func spanOf(n *sitter.Node) diagnostics.Span {
	return diagnostics.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

// fileBasename returns the path's base name with the extension and any test
// suffix removed.
func fileBasename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, suffix := range []string{".test", ".spec", "_test"} {
		base = strings.TrimSuffix(base, suffix)
	}
	return base
}

func isEntryBasename(path string) bool {
	return fileBasename(path) == "index"
}

func isTestFile(path string) bool {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(filepath.Base(path)))
	return strings.HasSuffix(base, ".test") ||
		strings.HasSuffix(base, ".spec") ||
		strings.HasSuffix(base, "_test")
}

// hasPathSegment reports whether the slash-normalized path contains the
// given directory segment.
func hasPathSegment(path, segment string) bool {
	norm := filepath.ToSlash(path)
	for _, part := range strings.Split(norm, "/") {
		if part == segment {
			return true
		}
	}
	return false
}
