package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "globalstyles",
	Short: "Global stylesheet builder with annotation-driven class suggestions",
	Long: `Maintain one global stylesheet from annotated CSS sources.
Classes documented with /* @hint name | description */ comments become a
suggestion registry; the build writes a minified stylesheet plus a JSON
hint manifest for editor integrations.`,
	// Default behavior: run build when no subcommand is given.
	// loadConfig must be called here because PreRunE of buildCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(buildCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".globalstyles.yaml", "Config file path")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(hintsCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
