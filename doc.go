// Package globalstyles maintains a single global stylesheet with
// annotation-driven class suggestions.
//
// Editors document reusable classes directly in the stylesheet with
// structured comments. Two annotation dialects exist:
//
//	/* @hint btn--primary | Primary call-to-action button */
//	/*
//	 * @class card | Content card container
//	 * @class card--wide | Full-width variant
//	 */
//
// # Parsing
//
// Extract annotations from raw CSS text:
//
//	hints := globalstyles.ParseHints(css)
//	for _, name := range hints.Names() {
//		desc, _ := hints.Description(name)
//		fmt.Println(name, desc)
//	}
//
// ParseHints collects @hint annotations into an ordered set where a later
// hint for the same class overrides the earlier one. ParseAnnotatedClasses
// collects @class annotations into a list that preserves duplicates.
//
// # Minification
//
// Produce a compact stylesheet for static delivery:
//
//	out := globalstyles.Minify(css)
//
// Alternative strategies are available through a named registry; see
// MakeMinifier.
//
// # Building
//
// Build scans stylesheet sources, extracts the hint registry, minifies the
// combined text and writes the result plus an optional JSON hint manifest:
//
//	config := globalstyles.Config{
//		SourceDir:  "styles",
//		Includes:   []string{"**/*.css"},
//		OutputFile: "dist/styles.min.css",
//		Minify:     true,
//	}
//	result, err := globalstyles.Build(config)
//
// # CLI Tool
//
// globalstyles also provides a CLI tool. Install with:
//
//	go install github.com/Kntnt/kntnt-global-styles/cmd/globalstyles@latest
package globalstyles
