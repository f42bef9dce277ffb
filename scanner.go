package cssel

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// SelectorRef represents a CSS selector literal found in code
type SelectorRef struct {
	Selector string       // Raw selector text: "div#main .item"
	Pattern  string       // Name of the scan pattern that matched
	Location FileLocation // Where it was found
}

// FileLocation tracks where a selector literal was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (exact start of the selector)
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern represents a regex pattern for finding selector literals
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

// Patterns for finding selector literals at common query call sites.
// Each pattern captures the selector in submatch 1.
var scanPatterns = []scanPattern{
	{
		name:  "querySelector call",
		regex: regexp.MustCompile(`querySelector(?:All)?\(\s*["'` + "`" + `]([^"'` + "`" + `]+)`),
	},
	{
		name:  "goquery Find call",
		regex: regexp.MustCompile(`\.Find\(\s*["` + "`" + `]([^"` + "`" + `]+)["` + "`" + `]\s*\)`),
	},
	{
		name:  "cascadia compile call",
		regex: regexp.MustCompile(`cascadia\.(?:MustCompile|Compile|ParseWithPseudoElement|Parse)\(\s*["` + "`" + `]([^"` + "`" + `]+)`),
	},
	{
		name:  "css struct tag",
		regex: regexp.MustCompile(`css:"([^"]+)"`),
	},
}

// Comment-only lines are skipped to avoid flagging documentation samples.
var commentPrefixes = []string{"//", "/*", "*", "#", "<!--"}

// scanFiles discovers source files from the configured glob patterns and
// extracts every selector literal they contain.
func scanFiles(config CheckConfig) ([]SelectorRef, ScanStats, error) {
	var stats ScanStats

	files, err := resolveScanPaths(config.ScanPaths)
	if err != nil {
		return nil, stats, err
	}

	matcher := loadGitignore()

	var refs []SelectorRef
	for _, file := range files {
		stats.FilesDiscovered++

		if shouldSkipFile(file) || (matcher != nil && matcher.MatchesPath(file)) {
			stats.FilesSkipped++
			continue
		}

		if config.Verbose {
			fmt.Printf("Scanning %s\n", file)
		}

		fileRefs, err := scanFile(file)
		if err != nil {
			return nil, stats, fmt.Errorf("scan %s: %w", file, err)
		}
		stats.FilesScanned++
		refs = append(refs, fileRefs...)
	}

	return refs, stats, nil
}

// resolveScanPaths expands glob patterns (with ** support) and removes
// duplicates while preserving order.
func resolveScanPaths(patterns []string) ([]string, error) {
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	seen := make(map[string]bool)
	unique := make([]string, 0, len(files))
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}

	return unique, nil
}

// loadGitignore compiles the working directory's .gitignore if present.
func loadGitignore() *ignore.GitIgnore {
	matcher, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		return nil
	}
	return matcher
}

// shouldSkipFile filters out vendored, minified, and generated files.
func shouldSkipFile(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")

	for _, segment := range []string{"vendor/", "node_modules/", ".git/"} {
		if strings.Contains(normalized, segment) {
			return true
		}
	}

	for _, suffix := range []string{".min.js", ".min.css", ".pb.go", "_gen.go", ".gen.go", "_templ.go"} {
		if strings.HasSuffix(normalized, suffix) {
			return true
		}
	}

	return false
}

// scanFile reads a file line by line and collects selector references.
func scanFile(path string) ([]SelectorRef, error) {
	// #nosec G304 - path comes from user-supplied scan patterns
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var refs []SelectorRef
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isCommentLine(line) {
			continue
		}
		refs = append(refs, scanLine(line, path, lineNo)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// scanLine applies every scan pattern to one line. Overlapping matches
// from later patterns are dropped so each literal is reported once.
func scanLine(line, file string, lineNo int) []SelectorRef {
	var refs []SelectorRef
	seen := make(map[int]bool)

	for _, p := range scanPatterns {
		for _, m := range p.regex.FindAllStringSubmatchIndex(line, -1) {
			start, end := m[2], m[3]
			if start < 0 || seen[start] {
				continue
			}
			seen[start] = true

			refs = append(refs, SelectorRef{
				Selector: line[start:end],
				Pattern:  p.name,
				Location: FileLocation{
					File:   file,
					Line:   lineNo,
					Column: start + 1,
					Text:   line,
				},
			})
		}
	}

	return refs
}
