package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mizchi/purets-linter-sub000/checker"
	"github.com/mizchi/purets-linter-sub000/diagnostics"
)

// fileReport is the JSON shape emitted per checked file.
type fileReport struct {
	Path        string                   `json:"path"`
	Diagnostics []diagnosticReport       `json:"diagnostics"`
	Untriggered []untriggeredExpectation `json:"untriggered,omitempty"`
}

type diagnosticReport struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

type untriggeredExpectation struct {
	Line  int      `json:"line"`
	Rules []string `json:"rules"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	verbose, _ := flags.GetBool("verbose")
	output, _ := flags.GetString("output")
	noColor, _ := flags.GetBool("no-color")
	expectErrors, _ := flags.GetBool("expect-errors")
	logLevel, _ := flags.GetString("log-level")

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	logger := newLogger(logLevel)

	files, err := discoverFiles(args)
	if err != nil {
		return err
	}
	logger.Debug().Int("files", len(files)).Msg("discovered sources")

	baseOpts := []checker.Option{checker.WithLogger(logger)}
	if cfg.Preset != "" {
		baseOpts = append(baseOpts, checker.WithPreset(cfg.Preset))
	}
	if len(cfg.DisabledRules) > 0 {
		baseOpts = append(baseOpts, checker.WithDisabledRules(cfg.DisabledRules...))
	}
	if cfg.TestRunner != "" {
		baseOpts = append(baseOpts, checker.WithTestRunner(cfg.TestRunner))
	}
	if expectErrors {
		baseOpts = append(baseOpts, checker.WithExpectErrors())
	}

	renderer := &diagnostics.Renderer{
		Verbose: verbose,
		Color:   !noColor && isTerminal(),
	}

	var merr *multierror.Error
	var reports []fileReport
	failed := false

	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		opts := baseOpts
		if cfg.isEntry(file) {
			opts = append(opts[:len(opts):len(opts)], checker.WithEntryFile())
		}
		result, err := checker.Check(cmd.Context(), file, source, opts...)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		if !result.Clean() || len(result.Untriggered) > 0 {
			failed = true
		}
		if output == "json" {
			reports = append(reports, buildReport(result))
			continue
		}
		renderer.Render(cmd.OutOrStdout(), result.Sink())
		for _, exp := range result.Untriggered {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d expected rules never fired: %s\n",
				file, exp.Line+1, strings.Join(exp.Rules, ", "))
		}
	}

	if output == "json" {
		if err := printJSON(cmd.OutOrStdout(), reports, !noColor && isTerminal()); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return err
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

func buildReport(result *checker.Result) fileReport {
	report := fileReport{Path: result.Path, Diagnostics: []diagnosticReport{}}
	for _, d := range result.Diagnostics {
		pos := result.Sink().Position(d.Span.Start)
		report.Diagnostics = append(report.Diagnostics, diagnosticReport{
			Rule:    d.Rule,
			Message: d.Message,
			Line:    pos.Line,
			Column:  pos.Column,
		})
	}
	for _, exp := range result.Untriggered {
		report.Untriggered = append(report.Untriggered, untriggeredExpectation{
			Line:  exp.Line + 1,
			Rules: exp.Rules,
		})
	}
	return report
}

// discoverFiles expands the given paths into TypeScript source files,
// walking directories while skipping node_modules and declaration files.
func discoverFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && (d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if isSourceFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func isSourceFile(path string) bool {
	if strings.HasSuffix(path, ".d.ts") {
		return false
	}
	switch filepath.Ext(path) {
	case ".ts", ".tsx":
		return true
	}
	return false
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
