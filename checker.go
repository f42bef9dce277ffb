package cssel

import (
	"errors"
	"fmt"
	"sort"
)

// CheckConfig holds checker configuration
type CheckConfig struct {
	ScanPaths []string // Patterns to scan (e.g. "web/**/*.js", "internal/**/*.go")
	Verbose   bool
	Strict    bool // Exit with code 1 on any issue (handled by the CLI)

	MaxIssues        int  // 0 = unlimited
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (selcheck) suffix (default: true)
	UseColors        bool // Enable color output (default: auto-detect)
}

// CheckResult contains checker analysis results
type CheckResult struct {
	FilesScanned     int
	FilesSkipped     int
	SelectorsChecked int

	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues dropped by MaxIssues
}

// Check scans the configured paths for CSS selector literals and
// validates each one: the selector must tokenize into the fixed part
// vocabulary, contain no duplicate singleton parts, and keep its parts
// in element < id < class < attr < pseudo-class < pseudo-element order.
//
// Ordering and duplicate violations are reported as errors; text the
// patterns matched but the tokenizer cannot parse is reported as a
// warning, since query call sites occasionally hold non-selector strings.
func Check(config CheckConfig) (*CheckResult, error) {
	refs, stats, err := scanFiles(config)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &CheckResult{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
	}

	if config.Verbose {
		fmt.Printf("Found %d selector literals in %d files\n", len(refs), stats.FilesScanned)
	}

	for _, ref := range refs {
		result.SelectorsChecked++
		if _, err := Parse(ref.Selector); err != nil {
			result.Issues = append(result.Issues, newIssue(ref, err))
		}
	}

	sortIssues(result.Issues)

	// Severity counts cover every issue found. MaxIssues only limits
	// what is displayed; exit-code decisions must see all errors.
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	if config.MaxIssues > 0 && len(result.Issues) > config.MaxIssues {
		result.TruncatedCount = len(result.Issues) - config.MaxIssues
		result.Issues = result.Issues[:config.MaxIssues]
	}

	return result, nil
}

// newIssue converts one failed selector parse into a reportable issue.
func newIssue(ref SelectorRef, err error) Issue {
	severity := SeverityError
	if errors.Is(err, ErrSyntax) {
		severity = SeverityWarning
	}

	return Issue{
		FromLinter:  linterName,
		Text:        fmt.Sprintf("selector %q: %v", ref.Selector, err),
		Severity:    severity,
		SourceLines: []string{ref.Location.Text},
		Pos: IssuePos{
			Filename: ref.Location.File,
			Line:     ref.Location.Line,
			Column:   ref.Location.Column,
		},
	}
}

// sortIssues orders issues by file, then line, then column.
func sortIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}
