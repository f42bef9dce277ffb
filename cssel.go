// Package cssel builds, parses, and checks CSS selectors.
//
// cssel provides an immutable selector builder with grammar validation,
// a parser that reconstructs selectors from text under the same rules,
// and a checker that finds and validates selector literals in source
// trees.
//
// # Building
//
// Selectors grow through pure append operations; every call returns a
// new value and enforces part ordering and uniqueness:
//
//	sel, _ := cssel.Selector{}.Element("a")
//	sel, _ = sel.Attr(`href$=".png"`)
//	sel, _ = sel.PseudoClass("focus")
//	sel.String() // `a[href$=".png"]:focus`
//
// Two selectors join with a combinator:
//
//	cssel.Combine(left, "+", right)
//
// # Checking
//
// Check scans source files for selector literals at common query call
// sites and reports violations in golangci-lint format:
//
//	result, err := cssel.Check(cssel.CheckConfig{
//		ScanPaths: []string{"web/**/*.js", "internal/**/*.go"},
//	})
//
// # CLI Tool
//
// cssel also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/cssel/cmd/cssel@latest
package cssel
