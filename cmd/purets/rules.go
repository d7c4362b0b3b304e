package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mizchi/purets-linter-sub000/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available rules and presets",
	Run: func(cmd *cobra.Command, args []string) {
		bold := color.New(color.Bold).SprintFunc()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, bold("rules"))
		for _, id := range rules.All() {
			fmt.Fprintf(out, "  %s\n", id)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, bold("presets"))
		for _, name := range rules.PresetNames() {
			preset, _ := rules.LookupPreset(name)
			if len(preset.Disabled) == 0 {
				fmt.Fprintf(out, "  %s (all rules)\n", name)
				continue
			}
			fmt.Fprintf(out, "  %s (disables %s)\n", name, strings.Join(preset.Disabled, ", "))
		}
	},
}
