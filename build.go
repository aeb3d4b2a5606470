package globalstyles

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds build configuration
type Config struct {
	SourceDir    string   // "styles"
	Includes     []string // ["**/*.css"]
	OutputFile   string   // "dist/styles.min.css"
	ManifestFile string   // "dist/hints.json" ("" disables the manifest)
	Minifier     string   // Strategy name: "builtin" (default) or "cssmin"
	Minify       bool     // false writes the trimmed raw text
	HashName     bool     // Embed a content hash in the output filename
	Verbose      bool     // Enable debug logging
}

// BuildResult contains build stats
type BuildResult struct {
	FilesScanned   int
	HintsExtracted int
	BytesIn        int
	BytesOut       int
	OutputPath     string // Actual path written (hash applied)
	ManifestPath   string
	Warnings       []string
}

// Build is the main entry point: scan stylesheet sources, extract the hint
// registry, minify the combined text and write the output stylesheet plus
// an optional hint manifest.
func Build(config Config) (*BuildResult, error) {
	result := &BuildResult{}

	// 1. Scan stylesheet sources
	patterns := make([]string, 0, len(config.Includes))
	for _, pattern := range config.Includes {
		patterns = append(patterns, filepath.Join(config.SourceDir, pattern))
	}

	files, stats, err := ScanStylesheets(patterns)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned

	if config.Verbose {
		fmt.Printf("Found %d stylesheet files\n", len(files))
	}

	// 2. Read and concatenate in scan order
	sources := make([]string, 0, len(files))
	for _, file := range files {
		// #nosec G304 - paths come from configured glob patterns
		content, err := os.ReadFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to read %s: %v", file, err))
			continue
		}
		sources = append(sources, string(content))
	}
	raw := strings.Join(sources, "\n")
	result.BytesIn = len(raw)

	// 3. Extract the suggestion registry before comments are stripped
	hints := ParseHints(raw)
	result.HintsExtracted = hints.Len()

	if config.Verbose {
		fmt.Printf("Extracted %d hints\n", hints.Len())
	}

	// 4. Minify with the configured strategy
	out := strings.TrimSpace(raw)
	if config.Minify {
		minifier := MakeMinifier(config.Minifier, nil)
		if minifier == nil {
			minifier = MakeMinifier("builtin", nil)
		}
		out, err = minifier.Apply(raw)
		if err != nil {
			return nil, fmt.Errorf("minify failed: %w", err)
		}
	}
	result.BytesOut = len(out)

	// 5. Write the stylesheet
	outputPath := config.OutputFile
	if config.HashName {
		outputPath = hashedName(outputPath, []byte(out))
	}
	if err := writeFile(outputPath, []byte(out)); err != nil {
		return nil, fmt.Errorf("write stylesheet: %w", err)
	}
	result.OutputPath = outputPath

	// 6. Write the hint manifest
	if config.ManifestFile != "" {
		if err := writeManifest(config.ManifestFile, hints); err != nil {
			return nil, fmt.Errorf("write manifest: %w", err)
		}
		result.ManifestPath = config.ManifestFile
	}

	return result, nil
}

// hashedName embeds the first 8 bytes of the content's SHA-256 in the
// filename for cache busting: styles.min.css -> styles.min.<hex16>.css
func hashedName(path string, content []byte) string {
	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:8])
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + hash + ext
}

// writeManifest serializes the hint registry as an ordered JSON array.
func writeManifest(path string, hints *HintSet) error {
	data, err := json.MarshalIndent(hints.Hints(), "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, append(data, '\n'))
}

// writeFile writes data, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
