package globalstyles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "src", "base.css"),
		"/* @hint btn | Button */\n.btn { color: red; }\n")
	writeTestFile(t, filepath.Join(dir, "src", "card.css"),
		"/* @hint card | Content card */\n.card { padding: 1rem; }\n")

	config := Config{
		SourceDir:    filepath.Join(dir, "src"),
		Includes:     []string{"**/*.css"},
		OutputFile:   filepath.Join(dir, "dist", "styles.min.css"),
		ManifestFile: filepath.Join(dir, "dist", "hints.json"),
		Minifier:     "builtin",
		Minify:       true,
	}

	result, err := Build(config)
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 2, result.HintsExtracted)
	assert.Less(t, result.BytesOut, result.BytesIn)
	assert.Empty(t, result.Warnings)

	out, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "/*")
	assert.Contains(t, string(out), ".btn{color:red}")
	assert.Contains(t, string(out), ".card{padding:1rem}")

	manifest, err := os.ReadFile(result.ManifestPath)
	require.NoError(t, err)

	var hints []Hint
	require.NoError(t, json.Unmarshal(manifest, &hints))
	assert.Equal(t, []Hint{
		{Name: "btn", Description: "Button"},
		{Name: "card", Description: "Content card"},
	}, hints)
}

func TestBuildWithoutMinify(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "src", "base.css"),
		"/* @hint btn | Button */\n.btn { color: red; }\n")

	config := Config{
		SourceDir:  filepath.Join(dir, "src"),
		Includes:   []string{"**/*.css"},
		OutputFile: filepath.Join(dir, "dist", "styles.css"),
	}

	result, err := Build(config)
	require.NoError(t, err)

	out, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)

	// Raw mode keeps comments and layout, trimmed only
	assert.Contains(t, string(out), "/* @hint btn | Button */")
	assert.Contains(t, string(out), ".btn { color: red; }")
}

func TestBuildHashName(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "src", "base.css"), ".btn { color: red; }\n")

	config := Config{
		SourceDir:  filepath.Join(dir, "src"),
		Includes:   []string{"**/*.css"},
		OutputFile: filepath.Join(dir, "dist", "styles.css"),
		Minify:     true,
		HashName:   true,
	}

	result, err := Build(config)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`styles\.[0-9a-f]{16}\.css$`), result.OutputPath)

	_, err = os.Stat(result.OutputPath)
	require.NoError(t, err)

	// Same content yields the same name
	again, err := Build(config)
	require.NoError(t, err)
	assert.Equal(t, result.OutputPath, again.OutputPath)
}

func TestBuildEmptySource(t *testing.T) {
	dir := t.TempDir()

	config := Config{
		SourceDir:    filepath.Join(dir, "src"),
		Includes:     []string{"**/*.css"},
		OutputFile:   filepath.Join(dir, "dist", "styles.min.css"),
		ManifestFile: filepath.Join(dir, "dist", "hints.json"),
		Minify:       true,
	}

	result, err := Build(config)
	require.NoError(t, err)

	assert.Equal(t, 0, result.FilesScanned)
	assert.Equal(t, 0, result.HintsExtracted)

	out, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	// Empty registry serializes as [], not null
	manifest, err := os.ReadFile(result.ManifestPath)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(manifest))
}

func TestHashedName(t *testing.T) {
	name := hashedName("dist/styles.min.css", []byte(".a{color:red}"))
	assert.Regexp(t, regexp.MustCompile(`^dist/styles\.min\.[0-9a-f]{16}\.css$`), name)

	// Different content, different name
	other := hashedName("dist/styles.min.css", []byte(".b{color:blue}"))
	assert.NotEqual(t, name, other)
}
