package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	gstyles "github.com/Kntnt/kntnt-global-styles"
)

var hintsCmd = &cobra.Command{
	Use:   "hints [file...]",
	Short: "List @hint annotations found in the stylesheets",
	Long: `Extract line-oriented @hint annotations. Later hints for the same class
override earlier ones; output preserves scan order. With no arguments the
configured stylesheet sources are scanned.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		css, err := readAnnotationSource(args)
		if err != nil {
			return err
		}

		hints := gstyles.ParseHints(css)

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return printJSON(hints.Hints())
		}

		for _, hint := range hints.Hints() {
			fmt.Printf("%s\t%s\n", hint.Name, hint.Description)
		}
		return nil
	},
}

var classesCmd = &cobra.Command{
	Use:   "classes [file...]",
	Short: "List @class annotations found in the stylesheets",
	Long: `Extract block-oriented @class annotations from comment blocks. Unlike
hints, duplicates are preserved as separate entries. With no arguments the
configured stylesheet sources are scanned.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		css, err := readAnnotationSource(args)
		if err != nil {
			return err
		}

		classes := gstyles.ParseAnnotatedClasses(css)

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			if classes == nil {
				classes = []gstyles.AnnotatedClass{}
			}
			return printJSON(classes)
		}

		for _, class := range classes {
			fmt.Printf("%s\t%s\n", class.Name, class.Description)
		}
		return nil
	},
}

func init() {
	hintsCmd.Flags().Bool("json", false, "Output as JSON")
	classesCmd.Flags().Bool("json", false, "Output as JSON")
}

// readAnnotationSource concatenates the given files, or the configured
// stylesheet sources when no files are named.
func readAnnotationSource(args []string) (string, error) {
	files := args

	if len(files) == 0 {
		config := buildBuildConfig()
		patterns := make([]string, 0, len(config.Includes))
		for _, pattern := range config.Includes {
			patterns = append(patterns, filepath.Join(config.SourceDir, pattern))
		}

		scanned, _, err := gstyles.ScanStylesheets(patterns)
		if err != nil {
			return "", fmt.Errorf("scan failed: %w", err)
		}
		files = scanned
	}

	sources := make([]string, 0, len(files))
	for _, path := range files {
		// #nosec G304 - paths come from CLI arguments or configured globs
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, string(content))
	}

	return strings.Join(sources, "\n"), nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
