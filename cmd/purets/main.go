package main

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "purets [paths...]",
	Short:         "Lint TypeScript against the pure subset",
	Long:          "purets statically analyzes TypeScript files and reports violations of a restrictive, pure subset of the language.",
	Args:          cobra.MinimumNArgs(1),
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolP("verbose", "v", false, "Show source lines and carets under diagnostics")
	flags.StringP("output", "o", "text", "Output format (text or json)")
	flags.String("preset", "", "Rule preset (minimal, recommended, strict)")
	flags.StringSlice("disable", nil, "Rule ids to disable")
	flags.Bool("no-color", false, "Disable colored output")
	flags.StringSlice("entry", nil, "Files treated as entry points")
	flags.String("test-runner", "", "Test runner whose registration calls are allowed (vitest, node, bun, deno)")
	flags.Bool("expect-errors", false, "Validate purets-expect-error annotations")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
