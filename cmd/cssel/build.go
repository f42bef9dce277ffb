package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssel"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble selectors from a YAML manifest",
	Long: `Read a selector manifest and assemble each declared selector through
the validated builder. Fails on duplicate singleton parts or parts out
of precedence order.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.String("manifest", "selectors.yaml", "Path to the selector manifest")
}

func runBuild(_ *cobra.Command, _ []string) error {
	config := buildBuildConfig()

	result, err := cssel.Build(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if quiet {
		return nil
	}

	for _, built := range result.Selectors {
		fmt.Printf("%s: %s\n", built.Name, built.Selector)
	}

	green := color.New(color.FgGreen).Sprint("✓")
	fmt.Printf("%s Built %d selectors from %s\n", green, len(result.Selectors), config.ManifestPath)

	for _, w := range result.Warnings {
		fmt.Printf("  Warning: %s\n", w)
	}

	return nil
}
