package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	gstyles "github.com/Kntnt/kntnt-global-styles"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [file]",
	Short: "Minify a stylesheet",
	Long: `Minify a single stylesheet to stdout (or --output). Reads stdin when no
file is given. The default strategy is the builtin minifier; --strategy
selects an alternative such as cssmin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var css []byte
		var err error

		if len(args) == 1 {
			// #nosec G304 - path comes from a CLI argument
			css, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
		} else {
			css, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
		}

		strategy, _ := cmd.Flags().GetString("strategy")
		minifier := gstyles.MakeMinifier(strategy, nil)
		if minifier == nil {
			return fmt.Errorf("unknown minifier strategy %q", strategy)
		}

		out, err := minifier.Apply(string(css))
		if err != nil {
			return fmt.Errorf("minify failed: %w", err)
		}

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath != "" {
			return os.WriteFile(outputPath, []byte(out), 0o644)
		}

		fmt.Println(out)
		return nil
	},
}

func init() {
	f := minifyCmd.Flags()
	f.StringP("output", "o", "", "Write to file instead of stdout")
	f.String("strategy", "builtin", "Minifier strategy: builtin|cssmin")
}
