package globalstyles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPreminified(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "minified output",
			path:     "dist/styles.min.css",
			expected: true,
		},
		{
			name:     "regular stylesheet",
			path:     "styles/base.css",
			expected: false,
		},
		{
			name:     "min in directory name only",
			path:     "min/styles.css",
			expected: false,
		},
		{
			name:     "nested minified file",
			path:     "vendor/lib/reset.min.css",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isPreminified(tt.path)
			assert.Equal(t, tt.expected, got, "isPreminified(%q)", tt.path)
		})
	}
}

func TestScanStylesheets(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "base.css"), ".a{}")
	writeTestFile(t, filepath.Join(dir, "components", "card.css"), ".card{}")
	writeTestFile(t, filepath.Join(dir, "dist", "styles.min.css"), ".a{}")

	files, stats, err := ScanStylesheets([]string{filepath.Join(dir, "**", "*.css")})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.Len(t, files, 2)

	for _, file := range files {
		assert.False(t, isPreminified(file), "minified file leaked into results: %s", file)
	}
}

func TestScanStylesheetsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "base.css"), ".a{}")

	// Overlapping patterns must not yield the same file twice
	files, _, err := ScanStylesheets([]string{
		filepath.Join(dir, "*.css"),
		filepath.Join(dir, "**", "*.css"),
	})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestScanStylesheetsNoMatches(t *testing.T) {
	dir := t.TempDir()

	files, stats, err := ScanStylesheets([]string{filepath.Join(dir, "**", "*.css")})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, ScanStats{}, stats)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
