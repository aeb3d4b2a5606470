package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .globalstyles.yaml config file",
	Long:  `Create a .globalstyles.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".globalstyles.yaml"); err == nil && !force {
			return fmt.Errorf(".globalstyles.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".globalstyles.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .globalstyles.yaml")
		return nil
	},
}

const defaultConfig = `# globalstyles configuration
# Docs: https://github.com/Kntnt/kntnt-global-styles

# Shared settings
verbose: false

# Build settings
build:
  source: styles
  include:
    - "**/*.css"
  output: dist/styles.min.css
  manifest: dist/hints.json   # empty string disables the manifest
  minifier: builtin           # builtin | cssmin
  minify: true
  hash-name: false            # embed a content hash in the filename

# Linting settings
lint:
  strict: false
  output-format: issues       # issues | summary | full | json
  max-issues: 0               # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
