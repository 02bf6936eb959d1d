package plot

import (
	"math"
	"runtime"
	"sort"

	"github.com/san-kum/braillegraph/internal/raster"
	"golang.org/x/sync/errgroup"
)

// minChunk keeps small inputs on the calling goroutine.
const minChunk = 512

// Boundaries returns height+1 evenly spaced row values spanning [yMin, yMax].
func Boundaries(height int, yMin, yMax float64) []float64 {
	step := (yMax - yMin) / float64(height)
	bounds := make([]float64, height+1)
	for n := range bounds {
		bounds[n] = math.FMA(step, float64(n), yMin)
	}
	return bounds
}

// NearestBucket returns the index of the boundary closest to y. bounds must be
// ascending. Values outside the table clamp to the first or last index and
// equidistant values pick the lower index.
func NearestBucket(bounds []float64, y float64) int {
	if len(bounds) == 0 || math.IsNaN(y) {
		return 0
	}
	last := len(bounds) - 1
	if y <= bounds[0] {
		return 0
	}
	if y >= bounds[last] {
		return last
	}

	// a table holding NaN is not ordered, so the search may land anywhere
	hi := sort.SearchFloat64s(bounds, y)
	if hi <= 0 {
		return 0
	}
	if hi > last {
		return last
	}
	lo := hi - 1
	if y-bounds[lo] <= bounds[hi]-y {
		return lo
	}
	return hi
}

// Normalize places every sample on the grid: its row is the nearest of
// height+1 boundaries over [yMin, yMax] and its column is
// floor(index / samplingFactor).
//
// The samples are split into contiguous chunks normalized concurrently. Each
// chunk writes only its own slice of the result, and the boundary table is
// shared read-only.
func Normalize(height int, yMin, yMax float64, points []raster.Point, samplingFactor float64) []raster.NormalizedPoint {
	bounds := Boundaries(height, yMin, yMax)
	out := make([]raster.NormalizedPoint, len(points))
	if len(points) == 0 {
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(points) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(points); start += chunk {
		start := start
		end := min(start+chunk, len(points))
		g.Go(func() error {
			normalizeChunk(bounds, points[start:end], out[start:end], start, samplingFactor)
			return nil
		})
	}
	// workers never return an error; Wait only joins them
	_ = g.Wait()

	return out
}

func normalizeChunk(bounds []float64, points []raster.Point, out []raster.NormalizedPoint, offset int, samplingFactor float64) {
	for i, p := range points {
		out[i] = raster.NormalizedPoint{
			X:    int(math.Floor(float64(offset+i) / samplingFactor)),
			Y:    NearestBucket(bounds, p.Y),
			YAcc: p.Y,
		}
	}
}
