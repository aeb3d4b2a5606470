package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".globalstyles.yaml")
	configContent := `
verbose: true

build:
  source: custom/css
  output: custom/out.min.css
  manifest: custom/hints.json
  minifier: cssmin
  hash-name: true

lint:
  strict: true
  max-issues: 25
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "custom/css", k.String("build.source"))
	assert.Equal(t, "custom/out.min.css", k.String("build.output"))
	assert.Equal(t, "custom/hints.json", k.String("build.manifest"))
	assert.Equal(t, "cssmin", k.String("build.minifier"))
	assert.True(t, k.Bool("build.hash-name"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 25, k.Int("lint.max-issues"))
	assert.False(t, k.Bool("lint.print-lines"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config - should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.globalstyles.yaml"))

	// buildBuildConfig should return defaults
	config := buildBuildConfig()
	assert.Equal(t, "styles", config.SourceDir)
	assert.Equal(t, "dist/styles.min.css", config.OutputFile)
	assert.Equal(t, "dist/hints.json", config.ManifestFile)
	assert.Equal(t, "builtin", config.Minifier)
	assert.True(t, config.Minify)
	assert.False(t, config.HashName)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".globalstyles.yaml")
	configContent := `
build:
  source: from-file
lint:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("GLOBALSTYLES_BUILD_SOURCE", "from-env")
	t.Setenv("GLOBALSTYLES_LINT_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("build.source"))
	assert.True(t, k.Bool("lint.strict"))
}

func TestBuildBuildConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildBuildConfig()
	assert.Equal(t, "styles", config.SourceDir)
	assert.Equal(t, "dist/styles.min.css", config.OutputFile)
	assert.Equal(t, "dist/hints.json", config.ManifestFile)
	assert.Equal(t, "builtin", config.Minifier)
	assert.True(t, config.Minify)
	assert.False(t, config.HashName)
	assert.False(t, config.Verbose)
	assert.Equal(t, []string{"**/*.css"}, config.Includes)
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig()
	assert.Equal(t, "styles", config.SourceDir)
	assert.Equal(t, []string{"**/*.css"}, config.Includes)
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.False(t, config.UseColors)
}

func TestBuildBuildConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".globalstyles.yaml")
	configContent := `
build:
  source: src/css
  include:
    - "base/*.css"
    - "components/**/*.css"
  output: public/app.min.css
  manifest: public/hints.json
  minifier: cssmin
  minify: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildBuildConfig()
	assert.Equal(t, "src/css", config.SourceDir)
	assert.Equal(t, "public/app.min.css", config.OutputFile)
	assert.Equal(t, "public/hints.json", config.ManifestFile)
	assert.Equal(t, "cssmin", config.Minifier)
	assert.False(t, config.Minify)
	assert.Equal(t, []string{"base/*.css", "components/**/*.css"}, config.Includes)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".globalstyles.yaml")
	configContent := `
lint:
  strict: true
  max-issues: 10
  print-lines: false
  print-linter-name: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig()
	assert.True(t, config.Strict)
	assert.Equal(t, 10, config.MaxIssues)
	assert.False(t, config.PrintIssuedLines)
	assert.False(t, config.PrintLinterName)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(".globalstyles.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "build:")
	assert.Contains(t, string(data), "lint:")
	assert.Contains(t, string(data), "minifier: builtin")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".globalstyles.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".globalstyles.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".globalstyles.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "minifier: builtin")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
