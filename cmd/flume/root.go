package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Global flags.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "flume",
	Short: "A minimal workflow composition engine",
	Long: `Flume composes independent nodes into pipelines: sequential chains,
parallel fan-out, and per-element batch processing over JSON-like values.

Pipelines are defined in YAML and executed locally or served over HTTP.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
