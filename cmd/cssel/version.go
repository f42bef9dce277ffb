package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/cssel
//
// Plain "go build" binaries report "dev".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the cssel version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("cssel", version)
	},
}
