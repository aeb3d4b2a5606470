package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gstyles "github.com/Kntnt/kntnt-global-styles"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the minified global stylesheet",
	Long: `Scan stylesheet sources, extract @hint annotations into a JSON manifest,
minify the combined CSS and write the output stylesheet.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.String("source", "styles", "Source CSS directory")
	f.StringSlice("include", nil, "Glob patterns for CSS files to include")
	f.String("output", "dist/styles.min.css", "Output stylesheet path")
	f.String("manifest", "dist/hints.json", "Hint manifest path (empty disables)")
	f.String("minifier", "builtin", "Minifier strategy: builtin|cssmin")
	f.Bool("minify", true, "Minify the output (false writes trimmed raw CSS)")
	f.Bool("hash-name", false, "Embed a content hash in the output filename")
	f.Bool("lint", false, "Run the hint linter after building")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	config := buildBuildConfig()

	result, err := gstyles.Build(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		fmt.Printf("Wrote %s\n", result.OutputPath)
		fmt.Printf("  Files scanned:   %d\n", result.FilesScanned)
		fmt.Printf("  Hints extracted: %d\n", result.HintsExtracted)
		fmt.Printf("  Size:            %d -> %d bytes\n", result.BytesIn, result.BytesOut)
		if result.ManifestPath != "" {
			fmt.Printf("  Manifest:        %s\n", result.ManifestPath)
		}

		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
	}

	// Run lint after build if --lint flag set
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		return runLint()
	}

	return nil
}
