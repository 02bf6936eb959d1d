package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/braillegraph/internal/logging"
	"github.com/san-kum/braillegraph/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	yMin       float64
	yMax       float64
	themeName  string
	verbose    bool
	// Graph viewport
	xMin float64
	xMax float64
	// Output
	svgFile string
	pngFile string
	// Table
	step     float64
	withPlot bool
)

// main runs the braillegraph CLI and exits with status 1 if the command fails.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.GetTheme(themeName).ErrorLine("error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "braillegraph",
		Short:         "braille graphs, curves and a spinning cube in the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.Set(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "canvas size preset")
	pf.IntVar(&width, "width", 240, "canvas width in dots (even)")
	pf.IntVar(&height, "height", 120, "canvas height in dots (multiple of 4)")
	pf.Float64Var(&yMin, "y-min", -7, "requested lower y bound")
	pf.Float64Var(&yMax, "y-max", 7, "requested upper y bound")
	pf.StringVar(&themeName, "theme", "minimal", "colour theme")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	graphCmd := &cobra.Command{
		Use:     "graph [equations]",
		Short:   "plot one or more '|' separated equations",
		Example: `  braillegraph graph "y=sin(x) | y=x^2/4" --x-min -6 --x-max 6`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGraph,
	}
	addViewportFlags(graphCmd)
	graphCmd.Flags().StringVar(&svgFile, "svg", "", "also write the graph as svg")
	graphCmd.Flags().StringVar(&pngFile, "png", "", "also write the dot grid as png")

	tableCmd := &cobra.Command{
		Use:   "table [equation]",
		Short: "print sampled points of an equation",
		Args:  cobra.ExactArgs(1),
		RunE:  runTable,
	}
	addViewportFlags(tableCmd)
	tableCmd.Flags().Float64Var(&step, "step", 0.5, "x step between samples")
	tableCmd.Flags().BoolVar(&withPlot, "plot", false, "append an ascii preview of the samples")

	bezierCmd := &cobra.Command{
		Use:   "bezier",
		Short: "draw a bezier curve from x,y control points",
	}
	quadCmd := &cobra.Command{
		Use:     "quad [p0] [p1] [p2]",
		Short:   "quadratic curve",
		Example: "  braillegraph bezier quad 0,0 120,110 239,0",
		Args:    cobra.ExactArgs(3),
		RunE:    runBezier,
	}
	cubicCmd := &cobra.Command{
		Use:     "cubic [p0] [p1] [p2] [p3]",
		Short:   "cubic curve",
		Example: "  braillegraph bezier cubic 0,0 60,110 180,10 239,119",
		Args:    cobra.ExactArgs(4),
		RunE:    runBezier,
	}
	for _, c := range []*cobra.Command{quadCmd, cubicCmd} {
		c.Flags().StringVar(&svgFile, "svg", "", "also write the sampled curve as svg")
	}
	bezierCmd.AddCommand(quadCmd, cubicCmd)

	cubeCmd := &cobra.Command{
		Use:   "cube",
		Short: "spin a wireframe cube until q is pressed",
		Args:  cobra.NoArgs,
		RunE:  runCube,
	}

	panCmd := &cobra.Command{
		Use:   "pan [equations]",
		Short: "interactive graph, arrow keys move the x window",
		Args:  cobra.ExactArgs(1),
		RunE:  runPan,
	}
	addViewportFlags(panCmd)

	animateCmd := &cobra.Command{
		Use:   "animate [equations]",
		Short: "zoom out from the x window frame by frame",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnimate,
	}
	addViewportFlags(animateCmd)

	calcCmd := &cobra.Command{
		Use:   "calc [expression]",
		Short: "evaluate an expression",
		Args:  cobra.ExactArgs(1),
		RunE:  runCalc,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list canvas size presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(graphCmd, tableCmd, bezierCmd, cubeCmd, panCmd, animateCmd, calcCmd, presetsCmd)
	return rootCmd
}

func addViewportFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&xMin, "x-min", -5, "left edge of the x window")
	cmd.Flags().Float64Var(&xMax, "x-max", 5, "right edge of the x window")
}
