package main

import (
	"os"

	"github.com/ewsmith/papergraph/internal/layout"
	"github.com/ewsmith/papergraph/internal/viz"
	"github.com/spf13/cobra"
)

var vizOutput string
var vizTitle string
var vizOffline bool

func init() {
	vizCmd.Flags().StringVarP(&vizOutput, "output", "o", "", "Output file path (default: stdout)")
	vizCmd.Flags().StringVar(&vizTitle, "title", "", "Page title")
	vizCmd.Flags().BoolVar(&vizOffline, "offline", false, "Embed Cytoscape.js inline instead of loading from CDN")
	vizCmd.Flags().StringVar(&buildFilter, "filter", "all", "View filter: all, material, organism, or author")
	vizCmd.Flags().IntVar(&buildThreshold, "threshold", 0, "Override the material co-occurrence threshold")
	registerLayoutFlags(vizCmd)
	rootCmd.AddCommand(vizCmd)
}

var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Generate an interactive graph visualization",
	Long: `Build the entity graph, compute its layout, and emit a
self-contained HTML page.

Node colors encode entity type; node size grows with accumulated weight;
edge width grows with strength.

Examples:
  papergraph viz > graph.html
  papergraph viz --filter material --output materials.html
  papergraph viz --width 1920 --height 1080 -o graph.html`,
	RunE: runViz,
}

func runViz(cmd *cobra.Command, args []string) error {
	g := buildGraph(cmd)

	nodes, err := layout.Run(cmd.Context(), g, layoutConfig(cmd))
	if err != nil {
		exitWithError(ExitError, "computing layout: %s", err)
	}

	opts := viz.DefaultOptions()
	if vizTitle != "" {
		opts.Title = vizTitle
	}
	opts.Offline = vizOffline

	html, err := viz.GenerateHTML(nodes, g.Edges, opts)
	if err != nil {
		exitWithError(ExitError, "generating HTML: %s", err)
	}

	if vizOutput == "" {
		os.Stdout.WriteString(html)
		return nil
	}
	if err := os.WriteFile(vizOutput, []byte(html), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %s", vizOutput, err)
	}
	if humanOutput {
		outputHuman("Wrote %s\n", vizOutput)
	}
	return nil
}
