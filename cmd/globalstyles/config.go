package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	gstyles "github.com/Kntnt/kntnt-global-styles"
	stylelint "github.com/Kntnt/kntnt-global-styles/internal/globalstyles"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".globalstyles.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence - only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (GLOBALSTYLES_* prefix)
	if err := k.Load(env.Provider("GLOBALSTYLES_", ".", func(s string) string {
		// GLOBALSTYLES_BUILD_SOURCE -> build.source
		// GLOBALSTYLES_LINT_STRICT -> lint.strict
		// GLOBALSTYLES_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GLOBALSTYLES_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildBuildConfig constructs the library's Config struct from koanf state.
func buildBuildConfig() gstyles.Config {
	config := gstyles.Config{
		SourceDir:    getStringWithFallback("source", "build.source", "styles"),
		OutputFile:   getStringWithFallback("output", "build.output", "dist/styles.min.css"),
		ManifestFile: getStringWithFallback("manifest", "build.manifest", "dist/hints.json"),
		Minifier:     getStringWithFallback("minifier", "build.minifier", "builtin"),
		Minify:       getBoolWithFallback("minify", "build.minify", true),
		HashName:     getBoolWithFallback("hash-name", "build.hash-name", false),
		Verbose:      getBoolWithFallback("verbose", "verbose", false),
	}

	config.Includes = includePatterns()

	return config
}

// buildLintConfig constructs the linter's config struct from koanf state.
func buildLintConfig() stylelint.LintConfig {
	return stylelint.LintConfig{
		SourceDir:        getStringWithFallback("source", "build.source", "styles"),
		Includes:         includePatterns(),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		Strict:           getBoolWithFallback("strict", "lint.strict", false),
		MaxIssues:        getIntWithFallback("max-issues", "lint.max-issues", 0),
		PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// includePatterns resolves the shared include globs: flag key first, then
// config key, then the default.
func includePatterns() []string {
	if includes := k.Strings("include"); len(includes) > 0 {
		return includes
	}
	if includes := k.Strings("build.include"); len(includes) > 0 {
		return includes
	}
	return []string{"**/*.css"}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
