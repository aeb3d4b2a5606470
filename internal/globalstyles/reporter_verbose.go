package globalstyles

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter handles detailed statistics and coverage output
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed hint statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Hint Statistics", r.useColors))
	fmt.Fprintln(r.w, "-----------------")

	fmt.Fprintf(r.w, "Classes Defined:  %d\n", result.ClassesDefined)
	fmt.Fprintf(r.w, "Hints Found:      %d\n", result.HintsFound)
	fmt.Fprintf(r.w, "Hinted Classes:   %d (%.1f%%)\n", result.HintedClasses, result.CoveragePercent)
	fmt.Fprintf(r.w, "Files Scanned:    %d\n", result.FilesScanned)
}

// PrintCoverageProgress shows a visual coverage bar
func (r *VerboseReporter) PrintCoverageProgress(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Hint Coverage", r.useColors))
	fmt.Fprintln(r.w, "---------------")
	printProgressBar(r.w, result.CoveragePercent)
}

// PrintUnhintedClasses lists defined classes that carry no hint yet
func (r *VerboseReporter) PrintUnhintedClasses(result LintResult) {
	if len(result.UnhintedClasses) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Unhinted Classes", r.useColors))
	fmt.Fprintln(r.w, "------------------")

	for i, name := range result.UnhintedClasses {
		if i >= 10 {
			fmt.Fprintf(r.w, "... and %d more\n", len(result.UnhintedClasses)-i)
			break
		}
		fmt.Fprintf(r.w, "%d. .%s\n", i+1, name)
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar renders a fixed-width percentage bar
func printProgressBar(w io.Writer, percentage float64) {
	const width = 30

	filled := int(percentage / 100 * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Fprintf(w, "[%s] %.1f%%\n", bar, percentage)
}
