package main

import (
	"github.com/ewsmith/papergraph/internal/config"
	"github.com/ewsmith/papergraph/internal/layout"
	"github.com/spf13/cobra"
)

var (
	layoutWidth      float64
	layoutHeight     float64
	layoutDepth      float64
	layoutIterations int
)

func init() {
	registerLayoutFlags(layoutCmd)
	layoutCmd.Flags().StringVar(&buildFilter, "filter", "all", "View filter: all, material, organism, or author")
	layoutCmd.Flags().IntVar(&buildThreshold, "threshold", 0, "Override the material co-occurrence threshold")
	rootCmd.AddCommand(layoutCmd)
}

// registerLayoutFlags binds the simulation flags shared by layout and viz.
func registerLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&layoutWidth, "width", 1280, "Canvas width")
	cmd.Flags().Float64Var(&layoutHeight, "height", 800, "Canvas height")
	cmd.Flags().Float64Var(&layoutDepth, "depth", 0, "Canvas depth (0 for 2D)")
	cmd.Flags().IntVar(&layoutIterations, "iterations", 50, "Simulation iteration count")
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Compute force-directed positions for the entity graph",
	Long: `Build the entity graph and run the force-directed layout, printing
the positioned node list as JSON.

The simulation is deterministic: identical records and parameters always
produce identical positions.

Examples:
  papergraph layout
  papergraph layout --width 1920 --height 1080 --iterations 100
  papergraph layout --depth 600   # 3D positions`,
	RunE: runLayout,
}

func runLayout(cmd *cobra.Command, args []string) error {
	g := buildGraph(cmd)

	cfg := layoutConfig(cmd)
	nodes, err := layout.Run(cmd.Context(), g, cfg)
	if err != nil {
		exitWithError(ExitError, "computing layout: %s", err)
	}

	if humanOutput {
		for _, n := range nodes {
			outputHuman("%-40s %8.2f %8.2f\n", n.ID, n.Position.X, n.Position.Y)
		}
		return nil
	}
	return outputJSON(nodes)
}

// layoutConfig assembles the simulation config from flags. Repository
// config supplies the canvas size when the flags are left at defaults.
func layoutConfig(cmd *cobra.Command) layout.Config {
	width, height := layoutWidth, layoutHeight

	if repoCfg, err := config.Load(mustFindRepository()); err == nil {
		if repoCfg.CanvasWidth > 0 && !cmd.Flags().Changed("width") {
			width = repoCfg.CanvasWidth
		}
		if repoCfg.CanvasHeight > 0 && !cmd.Flags().Changed("height") {
			height = repoCfg.CanvasHeight
		}
	}

	cfg := layout.DefaultConfig(width, height)
	cfg.Depth = layoutDepth
	cfg.Iterations = layoutIterations
	return cfg
}
