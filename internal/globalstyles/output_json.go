package globalstyles

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version         string      `json:"version"`
	Timestamp       string      `json:"timestamp"`
	Summary         JSONSummary `json:"summary"`
	Stats           JSONStats   `json:"stats"`
	Issues          []JSONIssue `json:"issues"`
	UnhintedClasses []string    `json:"unhinted_classes"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains hint coverage statistics
type JSONStats struct {
	ClassesDefined  int     `json:"classes_defined"`
	HintsFound      int     `json:"hints_found"`
	HintedClasses   int     `json:"hinted_classes"`
	CoveragePercent float64 `json:"coverage_percentage"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	unhinted := result.UnhintedClasses
	if unhinted == nil {
		unhinted = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			ClassesDefined:  result.ClassesDefined,
			HintsFound:      result.HintsFound,
			HintedClasses:   result.HintedClasses,
			CoveragePercent: result.CoveragePercent,
		},
		Issues:          jsonIssues,
		UnhintedClasses: unhinted,
	}
}
