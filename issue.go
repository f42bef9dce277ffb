package cssel

// Issue represents a single selector violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "selcheck"
	Text        string   `json:"Text"`        // `selector "div#a#b": duplicate selector part`
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the selector literal
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// linterName is the FromLinter tag on every issue this checker emits.
const linterName = "selcheck"
