// Package parser wraps the tree-sitter TypeScript grammars behind the small
// surface the checker needs: parse a file into a tree whose nodes carry byte
// offsets, string node kinds, and comment text.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Parse parses TypeScript source into a tree-sitter tree. Files with a .tsx
// or .jsx extension are parsed with the TSX grammar; everything else uses
// the plain TypeScript grammar.
func Parse(ctx context.Context, filename string, source []byte) (*sitter.Tree, error) {
	p := sitter.NewParser()
	if isTSX(filename) {
		p.SetLanguage(tsx.GetLanguage())
	} else {
		p.SetLanguage(typescript.GetLanguage())
	}
	tree, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return tree, nil
}

func isTSX(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tsx", ".jsx":
		return true
	}
	return false
}

// Text returns the source text covered by the node.
func Text(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return n.Content(source)
}
