package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	prettyjson "github.com/hokaccha/go-prettyjson"
	isatty "github.com/mattn/go-isatty"
)

func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printJSON(w io.Writer, value interface{}, colored bool) error {
	var (
		out []byte
		err error
	)
	if colored {
		out, err = prettyjson.Marshal(value)
	} else {
		f := prettyjson.NewFormatter()
		f.DisabledColor = true
		out, err = f.Marshal(value)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
