package globalstyles

// LinterName is the suffix shown after each reported issue.
const LinterName = "globalstyles"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue messages
const (
	IssueUnknownClass  = "hint references class %q which is not defined in any stylesheet"
	IssueDuplicateHint = "duplicate hint for class %q overrides the one at %s:%d"
	IssueInvalidName   = "hint class name %q is invalid and will be ignored"
)

// Issue represents a single lint finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"` // "globalstyles"
	Text        string   `json:"Text"`       // "hint references class \"btn--ghost\" which is not defined..."
	Severity    string   `json:"Severity"`   // "warning", "error"
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the class name
}

// LintConfig holds linting configuration
type LintConfig struct {
	SourceDir string   // Stylesheet source directory
	Includes  []string // Glob patterns relative to SourceDir
	Verbose   bool
	Strict    bool // Any issue fails; default soft gate fails on errors only

	MaxIssues        int  // 0 = unlimited (default)
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (globalstyles) suffix (default: true)
	UseColors        bool // Enable color output (default: auto-detect)
}

// LintResult contains hint-coverage analysis results
type LintResult struct {
	// Statistics
	FilesScanned    int
	ClassesDefined  int     // Distinct class selectors found in the stylesheets
	HintsFound      int     // Valid @hint annotations (duplicates included)
	HintedClasses   int     // Defined classes covered by a hint
	CoveragePercent float64 // HintedClasses / ClassesDefined

	// Issues in golangci-lint format
	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to MaxIssues

	// Defined classes with no hint, in definition order
	UnhintedClasses []string

	Warnings []string
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and coverage only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + coverage
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
