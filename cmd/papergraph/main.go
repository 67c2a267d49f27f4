// Package main provides the papergraph CLI entry point.
package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verbose enables debug logging
var verbose bool

// logger is the CLI-wide structured logger. Core packages never log; all
// diagnostics happen at this boundary.
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "papergraph",
	Short: "Entity-relationship graphs from bibliographic records",
	Long: `papergraph turns heterogeneous paper records into an interactive
entity-relationship graph.

Core features:
  - Entity extraction and dedup: papers, authors, materials, organisms,
    concepts, and methods collapse into typed, weighted nodes
  - Deterministic force-directed layout, independent of any renderer
  - Record storage in git-versionable JSONL with ephemeral SQLite for queries
  - Interactive HTML visualization of the positioned graph

All commands output JSON by default for scripting and agent integration.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(charmlog.DebugLevel)
		}
	},
}

func init() {
	// .env is optional; used for CROSSREF_MAILTO and similar
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
