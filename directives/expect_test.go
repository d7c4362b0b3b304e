package directives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanExpectedErrors(t *testing.T) {
	src := "// purets-expect-error no-class\nclass Foo {}\nconst x = 1;\n"
	idx := ScanExpectedErrors(src)
	require.Equal(t, 1, idx.Len())
	require.True(t, idx.IsExpected(1, "no-class"))
	require.False(t, idx.IsExpected(1, "no-enum"))
	require.False(t, idx.IsExpected(0, "no-class"))
}

func TestExpectErrorTriggered(t *testing.T) {
	src := "// purets-expect-error no-class, no-throw\nclass Foo {}\n"
	idx := ScanExpectedErrors(src)
	idx.MarkTriggered(1, "no-class")
	missing := idx.Untriggered()
	require.Len(t, missing, 1)
	require.Equal(t, 1, missing[0].Line)
	require.Equal(t, []string{"no-throw"}, missing[0].Rules)

	idx.MarkTriggered(1, "no-throw")
	require.Empty(t, idx.Untriggered())
}

func TestExpectErrorWithoutRulesIgnored(t *testing.T) {
	src := "// purets-expect-error\nclass Foo {}\n"
	idx := ScanExpectedErrors(src)
	require.Equal(t, 0, idx.Len())
}

func TestUntriggeredOrderedByLine(t *testing.T) {
	src := "// purets-expect-error no-enum\nenum A {}\n" +
		"// purets-expect-error no-class\nclass B {}\n"
	idx := ScanExpectedErrors(src)
	missing := idx.Untriggered()
	require.Len(t, missing, 2)
	require.Equal(t, 1, missing[0].Line)
	require.Equal(t, 3, missing[1].Line)
}
