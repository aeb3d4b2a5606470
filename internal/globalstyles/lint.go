package globalstyles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gstyles "github.com/Kntnt/kntnt-global-styles"
)

// hintOccurrence is a single @hint annotation with its source position.
// The core parser (gstyles.ParseHints) is position-free; the linter rescans
// per line with the same documented pattern to attach locations to issues.
type hintOccurrence struct {
	name        string
	description string
	valid       bool
	file        string
	line        int
	column      int
	text        string
}

// Lint cross-checks @hint annotations against the class selectors the
// stylesheets actually define.
func Lint(config LintConfig) (*LintResult, error) {
	patterns := make([]string, 0, len(config.Includes))
	for _, pattern := range config.Includes {
		patterns = append(patterns, filepath.Join(config.SourceDir, pattern))
	}

	files, stats, err := gstyles.ScanStylesheets(patterns)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &LintResult{FilesScanned: stats.FilesScanned}

	defined := make(map[string]bool)
	var definedOrder []string
	var occurrences []hintOccurrence

	for _, file := range files {
		// #nosec G304 - paths come from configured glob patterns
		content, err := os.ReadFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to read %s: %v", file, err))
			continue
		}
		text := string(content)

		for _, class := range ParseStylesheet(text, file) {
			if !defined[class.Name] {
				defined[class.Name] = true
				definedOrder = append(definedOrder, class.Name)
			}
		}
		occurrences = append(occurrences, collectHintOccurrences(text, file)...)
	}

	result.ClassesDefined = len(definedOrder)
	result.Issues = analyzeHints(occurrences, defined, result)

	// Coverage: which defined classes carry a hint
	hinted := make(map[string]bool)
	for _, occ := range occurrences {
		if occ.valid {
			hinted[occ.name] = true
		}
	}
	for _, name := range definedOrder {
		if hinted[name] {
			result.HintedClasses++
		} else {
			result.UnhintedClasses = append(result.UnhintedClasses, name)
		}
	}
	if result.ClassesDefined > 0 {
		result.CoveragePercent = float64(result.HintedClasses) / float64(result.ClassesDefined) * 100
	}

	result.Issues, result.TruncatedCount = limitIssues(result.Issues, config.MaxIssues)
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

// collectHintOccurrences scans content line by line so each annotation gets
// a 1-based line number and the column where the class name starts.
func collectHintOccurrences(content, file string) []hintOccurrence {
	var occurrences []hintOccurrence

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")

		match := gstyles.HintLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		name := strings.TrimSpace(match[1])
		occurrences = append(occurrences, hintOccurrence{
			name:        name,
			description: strings.TrimSpace(match[2]),
			valid:       gstyles.ValidClassName.MatchString(name),
			file:        file,
			line:        i + 1,
			column:      strings.Index(line, name) + 1,
			text:        line,
		})
	}

	return occurrences
}

// analyzeHints turns hint occurrences into issues:
//   - error: hint for a class no stylesheet defines
//   - warning: duplicate hint for the same class (the later one wins)
//   - warning: class name the core parser silently skips
func analyzeHints(occurrences []hintOccurrence, defined map[string]bool, result *LintResult) []Issue {
	var issues []Issue
	lastSeen := make(map[string]hintOccurrence)

	for _, occ := range occurrences {
		if !occ.valid {
			issues = append(issues, newIssue(occ, SeverityWarning,
				fmt.Sprintf(IssueInvalidName, occ.name)))
			continue
		}
		result.HintsFound++

		if prev, ok := lastSeen[occ.name]; ok {
			issues = append(issues, newIssue(occ, SeverityWarning,
				fmt.Sprintf(IssueDuplicateHint, occ.name, gstyles.GetRelativePath(prev.file), prev.line)))
		}
		lastSeen[occ.name] = occ

		if !defined[occ.name] {
			issues = append(issues, newIssue(occ, SeverityError,
				fmt.Sprintf(IssueUnknownClass, occ.name)))
		}
	}

	return issues
}

func newIssue(occ hintOccurrence, severity, text string) Issue {
	return Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{occ.text},
		Pos: IssuePos{
			Filename: occ.file,
			Line:     occ.line,
			Column:   occ.column,
		},
	}
}

// limitIssues truncates the issue list to maxIssues (0 = unlimited) and
// reports how many were dropped.
func limitIssues(issues []Issue, maxIssues int) ([]Issue, int) {
	if maxIssues <= 0 || len(issues) <= maxIssues {
		return issues, 0
	}
	return issues[:maxIssues], len(issues) - maxIssues
}
