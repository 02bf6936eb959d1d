package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/braillegraph/internal/eval"
	"github.com/san-kum/braillegraph/internal/logging"
	"github.com/san-kum/braillegraph/internal/raster"
)

const (
	// samplingDivisor sets point density: the domain is scanned at
	// width/samplingDivisor samples per visible column.
	samplingDivisor = 16.0
	// yRangeTolerance is how far a requested y bound may sit from the
	// sampled extreme before the extreme replaces it.
	yRangeTolerance = 50.0
	yAxisPadding    = 0.5
)

// Result is a rendered graph before framing.
type Result struct {
	Chars      [][]rune
	Grid       *raster.Grid
	XMin, XMax float64
	YMin, YMax float64
	Ticks      int
}

// Renderer draws equations sampled by a Provider.
type Renderer struct {
	provider eval.Provider
}

func NewRenderer(p eval.Provider) *Renderer {
	return &Renderer{provider: p}
}

// SamplingFactor is the number of domain samples per visible column.
func SamplingFactor(width int) float64 {
	return math.Max(1, float64(width)/samplingDivisor)
}

// Graph renders one or more '|' separated equations over [xMin, xMax] and
// returns the framed output.
func (r *Renderer) Graph(equations string, xMin, xMax float64, opts raster.GraphOptions) (string, error) {
	res, err := r.Render(equations, xMin, xMax, opts)
	if err != nil {
		return "", err
	}
	return Frame(res.Chars, res.XMin, res.XMax, res.YMin, res.YMax), nil
}

// Render runs the raster pipeline: ticks, samples, x-axis, row reversal,
// y-axis, braille encoding. Nothing is drawn if any equation fails.
func (r *Renderer) Render(equations string, xMin, xMax float64, opts raster.GraphOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if !(xMin < xMax) || math.IsInf(xMin, 0) || math.IsInf(xMax, 0) {
		return nil, fmt.Errorf("%w: x min `%g`, x max `%g`", ErrDegenerateViewport, xMin, xMax)
	}

	samplingFactor := SamplingFactor(opts.Width)
	xStep := (xMax - xMin) / (float64(opts.Width) * samplingFactor)

	eqs := strings.Split(equations, "|")
	collection := make([][]raster.Point, 0, len(eqs))

	yMin, yMax := opts.YMin, opts.YMax
	masterMin, masterMax := math.MaxFloat64, -math.MaxFloat64

	for _, eq := range eqs {
		eq = strings.TrimSpace(eq)
		if eq == "" {
			return nil, ErrEmptyEquation
		}
		points, err := r.provider.Plot(eq, xMin, xMax, xStep)
		if err != nil {
			return nil, &EvalError{Equation: eq, Err: err}
		}

		lo, hi := yExtremes(points)
		if math.Abs(yMax-hi) < yRangeTolerance {
			yMax = hi
		}
		if math.Abs(yMin-lo) < yRangeTolerance {
			yMin = lo
		}
		masterMin = math.Min(masterMin, yMin)
		masterMax = math.Max(masterMax, yMax)

		collection = append(collection, sanitize(points))
	}

	masterMax += yAxisPadding
	masterMin -= yAxisPadding

	logging.L().Debug("graph window",
		"equations", len(collection),
		"sampling_factor", samplingFactor,
		"x_step", xStep,
		"y_min", masterMin,
		"y_max", masterMax,
	)

	g := raster.NewGrid(opts)
	ticks := AddTickMarks(g, xMin, xMax, masterMin, masterMax, opts)

	for _, points := range collection {
		for _, np := range Normalize(opts.Height, masterMin, masterMax, points, samplingFactor) {
			if np.YAcc <= masterMax && np.YAcc >= masterMin {
				g.Set(np.Y, np.X)
			}
		}
	}

	AddXAxis(g, masterMin, masterMax, opts.Height)
	g.ReverseRows()
	AddYAxis(g, xMin, xMax, opts.Width)

	return &Result{
		Chars: raster.Encode(g, opts),
		Grid:  g,
		XMin:  xMin,
		XMax:  xMax,
		YMin:  masterMin,
		YMax:  masterMax,
		Ticks: ticks,
	}, nil
}

// yExtremes returns the smallest and largest y, ignoring NaN samples.
func yExtremes(points []raster.Point) (float64, float64) {
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		if math.IsNaN(p.Y) {
			continue
		}
		lo = math.Min(lo, p.Y)
		hi = math.Max(hi, p.Y)
	}
	return lo, hi
}

// sanitize replaces every sample with a NaN coordinate by the origin.
func sanitize(points []raster.Point) []raster.Point {
	clean := points
	copied := false
	for i, p := range points {
		if !math.IsNaN(p.X) && !math.IsNaN(p.Y) {
			continue
		}
		if !copied {
			clean = append([]raster.Point(nil), points...)
			copied = true
		}
		clean[i] = raster.Point{}
	}
	return clean
}
