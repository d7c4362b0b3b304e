package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Renderer writes diagnostics in the textual form
//
//	path:line:col [rule] message
//
// and, when verbose, follows each diagnostic with the offending source line
// and a caret under the reported column.
type Renderer struct {
	// Verbose enables the source line and caret under each diagnostic.
	Verbose bool
	// Color enables ANSI colors in the output.
	Color bool
}

// Colors used for diagnostic output.
var (
	colorLocation = color.New(color.FgCyan)
	colorRule     = color.New(color.FgMagenta)
	colorCaret    = color.New(color.FgRed, color.Bold)
)

// Render writes all diagnostics from the sink to w.
func (r *Renderer) Render(w io.Writer, sink *Sink) {
	for _, d := range sink.Items() {
		r.renderOne(w, sink, d)
	}
}

func (r *Renderer) renderOne(w io.Writer, sink *Sink, d Diagnostic) {
	pos := sink.Position(d.Span.Start)
	location := fmt.Sprintf("%s:%d:%d", sink.Path(), pos.Line, pos.Column)
	rule := fmt.Sprintf("[%s]", d.Rule)
	if r.Color {
		location = colorLocation.Sprint(location)
		rule = colorRule.Sprint(rule)
	}
	fmt.Fprintf(w, "%s %s %s\n", location, rule, d.Message)

	if !r.Verbose {
		return
	}
	line := sink.Lines().Line(pos.Line)
	if line == "" {
		return
	}
	caret := strings.Repeat(" ", pos.Column-1) + "^"
	if r.Color {
		caret = colorCaret.Sprint(caret)
	}
	fmt.Fprintf(w, "  %s\n  %s\n", line, caret)
}
