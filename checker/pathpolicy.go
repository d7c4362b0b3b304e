package checker

import (
	"fmt"

	"github.com/mizchi/purets-linter-sub000/rules"
)

// checkPathPolicy applies the directory-convention rules. It is a pure
// function of the file path and the top-level declarations gathered by the
// pre-pass, independent of the main walk, sharing only the sink.
//
//   - The exported function must match the filename.
//   - Functions in a pure/ directory must be synchronous.
//   - Functions in an io/ directory must be asynchronous.
func (c *Checker) checkPathPolicy() {
	fns := c.state.exportedFunctions

	skipFilename := c.entryFile ||
		hasPathSegment(c.path, "types") || hasPathSegment(c.path, "errors")
	if !skipFilename && len(fns) > 0 {
		base := fileBasename(c.path)
		if fns[0].name != base {
			c.sink.AddError(rules.FilenameMatch,
				fmt.Sprintf("Exported function '%s' should match the filename; expected '%s'", fns[0].name, base),
				fns[0].span)
		}
	}

	isPure := hasPathSegment(c.path, "pure")
	isIO := hasPathSegment(c.path, "io")
	for _, fn := range fns {
		if isPure && fn.isAsync {
			c.sink.AddError(rules.PureModule,
				fmt.Sprintf("Function '%s' is in a pure/ directory and cannot be async", fn.name),
				fn.span)
		}
		if isIO && !fn.isAsync {
			c.sink.AddError(rules.IOModule,
				fmt.Sprintf("Function '%s' is in an io/ directory and must be async", fn.name),
				fn.span)
		}
	}
}
