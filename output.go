package cssel

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/yacobolo/cssel/codec"
)

// OutputFormat represents the checker output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows scan statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues plus statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data for tooling integration
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to the issues format, matching golangci-lint's
// default of clean, consistent output everywhere.
func DetermineOutputFormat(requested string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues // suppressed by the caller, exit code only
	}

	switch requested {
	case "issues", "":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}
	return OutputIssues
}

// WriteOutput writes the check result in the specified format.
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) error {
	switch format {
	case OutputSummary:
		printStatistics(w, result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		printStatistics(w, result)

	case OutputJSON:
		return writeJSON(w, result)

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}

	return nil
}

// printStatistics writes the scan statistics block.
func printStatistics(w io.Writer, result *CheckResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)

	fmt.Fprintln(w, "")
	cyan.Fprintln(w, "Statistics:")
	fmt.Fprintf(w, "  Files scanned:     %d\n", result.FilesScanned)
	fmt.Fprintf(w, "  Files skipped:     %d\n", result.FilesSkipped)
	fmt.Fprintf(w, "  Selectors checked: %d\n", result.SelectorsChecked)
	if result.ErrorCount > 0 {
		red.Fprintf(w, "  Errors:            %d\n", result.ErrorCount)
	}
	if result.WarningCount > 0 {
		yellow.Fprintf(w, "  Warnings:          %d\n", result.WarningCount)
	}
}

// jsonOutput is the structured JSON export schema
type jsonOutput struct {
	Version string      `json:"version"`
	Summary jsonSummary `json:"summary"`
	Issues  []jsonIssue `json:"issues"`
}

type jsonSummary struct {
	FilesScanned     int `json:"files_scanned"`
	SelectorsChecked int `json:"selectors_checked"`
	TotalIssues      int `json:"total_issues"`
	Errors           int `json:"errors"`
	Warnings         int `json:"warnings"`
}

type jsonIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// writeJSON exports the check result through the codec package.
func writeJSON(w io.Writer, result *CheckResult) error {
	out := jsonOutput{
		Version: "1",
		Summary: jsonSummary{
			FilesScanned:     result.FilesScanned,
			SelectorsChecked: result.SelectorsChecked,
			TotalIssues:      len(result.Issues),
			Errors:           result.ErrorCount,
			Warnings:         result.WarningCount,
		},
		Issues: make([]jsonIssue, 0, len(result.Issues)),
	}

	for _, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		out.Issues = append(out.Issues, jsonIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		})
	}

	text, err := codec.EncodeIndent(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
