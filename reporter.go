package cssel

import (
	"fmt"
	"io"

	"github.com/yacobolo/cssel/internal/report"
)

// Reporter formats checker results in golangci-lint style
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter from the checker configuration.
func NewReporter(w io.Writer, config CheckConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       report.ShouldUseColors(config.UseColors),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// PrintIssues outputs issues, one block per issue. Issues are expected
// to be pre-sorted by file, line, column.
func (r *Reporter) PrintIssues(issues []Issue) {
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as file:line:col: message (linter).
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		report.Render(report.StyleCyan, location, r.useColors),
		issue.Text,
		report.Render(report.StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := report.CaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", report.Render(report.StyleYellow, caret, r.useColors))
	}
}

// PrintSummary outputs the issue count summary.
func (r *Reporter) PrintSummary(result CheckResult) {
	totalIssues := len(result.Issues)

	fmt.Fprintln(r.w, "")

	switch {
	case result.ErrorCount > 0 && result.WarningCount > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)%s\n",
			report.PluralizeCount(totalIssues, "issue", "issues"),
			report.PluralizeCount(result.ErrorCount, "error", "errors"),
			report.PluralizeCount(result.WarningCount, "warning", "warnings"),
			truncatedSuffix(result.TruncatedCount))
	case totalIssues > 0:
		fmt.Fprintf(r.w, "%s%s\n",
			report.PluralizeCount(totalIssues, "issue", "issues"),
			truncatedSuffix(result.TruncatedCount))
	default:
		fmt.Fprintln(r.w, report.Render(report.StyleGreen,
			fmt.Sprintf("no issues in %d selectors", result.SelectorsChecked), r.useColors))
	}
}

func truncatedSuffix(truncated int) string {
	if truncated == 0 {
		return ""
	}
	return fmt.Sprintf(" (%s truncated)", report.PluralizeCount(truncated, "issue", "issues"))
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}
