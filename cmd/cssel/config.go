package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssel"
)

var k = koanf.New(".")

// parsedFlags is the flag set loadConfig last saw. The fallback getters
// consult a flag key only when the flag was explicitly set on the command
// line, so flag defaults never shadow config file or env values.
var parsedFlags *pflag.FlagSet

func flagChanged(name string) bool {
	return parsedFlags != nil && parsedFlags.Changed(name)
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssel.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence)
	parsedFlags = cmd.Flags()
	if err := k.Load(posflag.Provider(parsedFlags, ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSEL_* prefix)
	if err := k.Load(env.Provider("CSSEL_", ".", func(s string) string {
		// CSSEL_BUILD_MANIFEST -> build.manifest
		// CSSEL_CHECK_STRICT -> check.strict
		// CSSEL_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSEL_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildBuildConfig constructs the library's BuildConfig from koanf state.
func buildBuildConfig() cssel.BuildConfig {
	return cssel.BuildConfig{
		ManifestPath: getStringWithFallback("manifest", "build.manifest", "selectors.yaml"),
		Verbose:      getBoolWithFallback("verbose", "verbose", false),
	}
}

// buildCheckConfig constructs the library's CheckConfig from koanf state.
func buildCheckConfig() cssel.CheckConfig {
	var scanPaths []string
	if paths := k.Strings("paths"); flagChanged("paths") && len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("check.paths"); len(paths) > 0 {
		scanPaths = paths
	} else {
		scanPaths = []string{
			"**/*.go",
			"**/*.js",
			"**/*.html",
		}
	}

	return cssel.CheckConfig{
		ScanPaths:        scanPaths,
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		Strict:           getBoolWithFallback("strict", "check.strict", false),
		MaxIssues:        getIntWithFallback("max-issues", "check.max-issues", 0),
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks an explicitly set flag first, then the config
// file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if flagChanged(flagKey) {
		if v := k.String(flagKey); v != "" {
			return v
		}
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks an explicitly set flag first, then the config
// file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if flagChanged(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks an explicitly set flag first, then the config
// file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if flagChanged(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
