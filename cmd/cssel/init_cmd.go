package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssel.yaml config file",
	Long:  `Create a .cssel.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssel.yaml"); err == nil && !force {
			return fmt.Errorf(".cssel.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssel.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssel.yaml")
		return nil
	},
}

const defaultConfig = `# cssel configuration
# Docs: https://github.com/yacobolo/cssel

# Shared settings
verbose: false

# Build settings
build:
  manifest: selectors.yaml

# Check settings
check:
  paths:
    - "**/*.go"
    - "**/*.js"
    - "**/*.html"
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
