package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssel"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check selector literals in source files",
	Long: `Scan source files for CSS selector literals at common query call
sites (querySelector, goquery Find, cascadia compile calls, css struct
tags) and validate each against the selector grammar.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck()
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", []string{
		"**/*.go",
		"**/*.js",
		"**/*.html",
	}, "File patterns to scan for selector literals")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (selcheck) suffix on issues")
}

func runCheck() error {
	checkConfig := buildCheckConfig()

	result, err := cssel.Check(checkConfig)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := cssel.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := cssel.WriteOutput(os.Stdout, result, format, checkConfig); err != nil {
			return err
		}
	}

	// Exit code logic - "Soft Gate" approach: only errors fail the
	// build unless strict mode is on.
	if checkConfig.Strict {
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount > 0 {
		os.Exit(1)
	}

	return nil
}
