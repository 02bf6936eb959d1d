package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/braillegraph/internal/bezier"
	"github.com/san-kum/braillegraph/internal/config"
	"github.com/san-kum/braillegraph/internal/eval"
	"github.com/san-kum/braillegraph/internal/export"
	"github.com/san-kum/braillegraph/internal/logging"
	"github.com/san-kum/braillegraph/internal/plot"
	"github.com/san-kum/braillegraph/internal/raster"
	"github.com/san-kum/braillegraph/internal/tui"
	"github.com/spf13/cobra"
)

const (
	svgScale = 4.0
	pngScale = 4
)

// loadConfig builds the effective config: defaults, then the config file,
// then the preset, then any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.SetWidth(width)
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("y-min") {
		cfg.YMin = yMin
	}
	if flags.Changed("y-max") {
		cfg.YMax = yMax
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Lookup("step") != nil && flags.Changed("step") {
		cfg.Table.Step = step
	}
	themeName = cfg.Theme

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.L().Debug("config", "width", cfg.Width, "height", cfg.Height, "y_min", cfg.YMin, "y_max", cfg.YMax, "theme", cfg.Theme)
	return cfg, nil
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := plot.NewRenderer(eval.NewExpr()).Render(args[0], xMin, xMax, cfg.GraphOptions())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), plot.Frame(res.Chars, res.XMin, res.XMax, res.YMin, res.YMax))

	if svgFile != "" {
		if err := writeFile(svgFile, export.BrailleToSVG(res.Chars, svgScale)); err != nil {
			return err
		}
	}
	if pngFile != "" {
		return writePNG(pngFile, res.Grid)
	}
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	points, err := eval.NewExpr().Plot(args[0], xMin, xMax, cfg.Table.Step)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, plot.Table(points))

	if withPlot && len(points) > 1 {
		ys := make([]float64, len(points))
		for i, p := range points {
			ys[i] = p.Y
		}
		caption := fmt.Sprintf("%s on [%g, %g]", eval.Body(args[0]), xMin, xMax)
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(ys,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		))
	}
	return nil
}

func runBezier(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	points := make([]raster.Point, len(args))
	for i, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			return err
		}
		points[i] = p
	}

	out, err := bezier.Render(points, cfg.GraphOptions())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if svgFile != "" {
		curve, err := bezier.FromPoints(points)
		if err != nil {
			return err
		}
		samples := bezier.Samples(curve, bezier.DefaultStep)
		return writeFile(svgFile, export.PathToSVG(samples, cfg.Width*svgScale, cfg.Height*svgScale, "#00ff00"))
	}
	return nil
}

func runCube(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	settings := tui.CubeSettings{
		Interval: cfg.CubeTick(),
		RotX:     cfg.Cube.RotateX,
		RotY:     cfg.Cube.RotateY,
		RotZ:     cfg.Cube.RotateZ,
	}
	return tui.RunCube(cfg.GraphOptions(), settings, tui.GetTheme(cfg.Theme))
}

func runPan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r := plot.NewRenderer(eval.NewExpr())
	return tui.RunPan(r, args[0], tui.Viewport{XMin: xMin, XMax: xMax}, cfg.GraphOptions(), tui.GetTheme(cfg.Theme))
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r := plot.NewRenderer(eval.NewExpr())
	settings := tui.AnimateSettings{Frames: cfg.Animation.Frames, Delay: cfg.FrameDelay()}
	return tui.RunAnimate(r, args[0], tui.Viewport{XMin: xMin, XMax: xMax}, cfg.GraphOptions(), settings, tui.GetTheme(cfg.Theme))
}

func runCalc(cmd *cobra.Command, args []string) error {
	v, err := eval.Calculate(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "presets:")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(out, "  %-8s %dx%d\n", name, p.Width, p.Height)
	}
	return nil
}

// parsePoint reads an "x,y" control point.
func parsePoint(s string) (raster.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return raster.Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return raster.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return raster.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return raster.Point{}, fmt.Errorf("invalid point %q", s)
	}
	return raster.Pt(x, y), nil
}

func writePNG(path string, g *raster.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.GridToPNG(f, g, pngScale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logging.L().Info("wrote file", "path", path)
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	logging.L().Info("wrote file", "path", path, "bytes", len(content))
	return nil
}
