package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTypeScript(t *testing.T) {
	src := []byte("const x: number = 1;\n")
	tree, err := Parse(context.Background(), "a.ts", src)
	require.NoError(t, err)
	root := tree.RootNode()
	require.Equal(t, "program", root.Type())
	require.False(t, root.HasError())

	decl := root.NamedChild(0)
	require.Equal(t, "lexical_declaration", decl.Type())
	require.Equal(t, "const x: number = 1;", Text(decl, src))
}

func TestParseTSX(t *testing.T) {
	src := []byte("export const view = <div>hello</div>;\n")
	tree, err := Parse(context.Background(), "view.tsx", src)
	require.NoError(t, err)
	require.False(t, tree.RootNode().HasError())
}

func TestParseSpans(t *testing.T) {
	src := []byte("let a = 1;\nlet b = 2;\n")
	tree, err := Parse(context.Background(), "a.ts", src)
	require.NoError(t, err)
	second := tree.RootNode().NamedChild(1)
	require.Equal(t, uint32(11), second.StartByte())
	require.Equal(t, "let b = 2;", Text(second, src))
}

func TestIsTSX(t *testing.T) {
	require.True(t, isTSX("a.tsx"))
	require.True(t, isTSX("A.TSX"))
	require.True(t, isTSX("a.jsx"))
	require.False(t, isTSX("a.ts"))
	require.False(t, isTSX("a"))
}

func TestTextNil(t *testing.T) {
	require.Equal(t, "", Text(nil, nil))
}
