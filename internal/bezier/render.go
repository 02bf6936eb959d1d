package bezier

import (
	"github.com/san-kum/braillegraph/internal/logging"
	"github.com/san-kum/braillegraph/internal/plot"
	"github.com/san-kum/braillegraph/internal/raster"
)

// Points returns everything drawn for c: the endpoints, the control point
// markers, and the sampled curve.
func Points(c Curve, opts raster.GraphOptions) []raster.Point {
	points := []raster.Point{c.Start()}
	points = append(points, Markers(c.Controls(), float64(opts.Width), float64(opts.Height))...)
	points = append(points, c.End())
	return append(points, Samples(c, DefaultStep)...)
}

// Rasterize plots c directly in pixel space; row 0 is y = 0.
func Rasterize(c Curve, opts raster.GraphOptions) *raster.Grid {
	g := raster.NewGrid(opts)
	for _, p := range Points(c, opts) {
		if p.X < 0 || p.Y < 0 {
			continue
		}
		g.Set(int(p.Y), int(p.X))
	}
	return g
}

// Draw renders c inside a frame spanning [0, width] x [0, height].
func Draw(c Curve, opts raster.GraphOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	g := Rasterize(c, opts)
	logging.L().Debug("bezier rendered", "controls", len(c.Controls()), "lit", g.Count())
	chars := raster.Encode(g, opts)
	return plot.CurveFrame(chars, 0, float64(opts.Width), 0, float64(opts.Height)), nil
}

// Render draws the quadratic (3 points) or cubic (4 points) curve through
// the given control points.
func Render(controlPoints []raster.Point, opts raster.GraphOptions) (string, error) {
	c, err := FromPoints(controlPoints)
	if err != nil {
		return "", err
	}
	return Draw(c, opts)
}
