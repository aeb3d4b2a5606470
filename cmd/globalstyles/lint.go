package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	stylelint "github.com/Kntnt/kntnt-global-styles/internal/globalstyles"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Cross-check @hint annotations against defined classes",
	Long: `Check that every @hint annotation names a class the stylesheets actually
define. Detects hints for unknown classes, duplicate hints and invalid
class names, and reports hint coverage.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.String("source", "styles", "Source CSS directory")
	f.StringSlice("include", nil, "Glob patterns for CSS files to include")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (globalstyles) suffix on issues")
}

// runLint is shared between `globalstyles lint` and `globalstyles build --lint`.
func runLint() error {
	lintConfig := buildLintConfig()

	lintResult, err := stylelint.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := stylelint.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		stylelint.WriteOutput(os.Stdout, lintResult, format, lintConfig)
	}

	// Exit code logic - "Soft Gate" approach
	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(lintResult.Issues) > 0 {
			os.Exit(1)
		}
	} else if lintResult.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
