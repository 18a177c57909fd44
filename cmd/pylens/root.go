package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	pylenslog "pylens/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for pylens.
var rootCmd = &cobra.Command{
	Use:   "pylens",
	Short: "Inspect Python source structure and replay an assistant walkthrough",
	Long: `Pylens is a small workbench around two operations: a shallow structure
scan of Python sources (classes, methods, imports, framework key imports)
that produces a JSON report, and a scripted walkthrough replaying how an
MCP-connected assistant would analyze and optimize a segmentation module.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		pylenslog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
