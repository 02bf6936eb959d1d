package plot

import (
	"math"

	"github.com/san-kum/braillegraph/internal/logging"
	"github.com/san-kum/braillegraph/internal/raster"
)

// Tick mark display thresholds based on graph width.
const (
	tickWidthSmall  = 76
	tickWidthMedium = 151
	tickWidthLarge  = 301

	tickMaxSmall  = 80
	tickMaxMedium = 160
	tickMaxLarge  = 300
	tickMaxXLarge = 400
)

// TickCap is the largest number of integer tick marks drawn at a given width.
func TickCap(width int) int {
	switch {
	case width < tickWidthSmall:
		return tickMaxSmall
	case width < tickWidthMedium:
		return tickMaxMedium
	case width < tickWidthLarge:
		return tickMaxLarge
	default:
		return tickMaxXLarge
	}
}

// AxisInView reports whether zero lies strictly inside (lo, hi) and where
// it falls on an axis of n cells.
func AxisInView(lo, hi float64, n int) (bool, int) {
	inView := lo < 0 && hi > 0
	ratio := math.Abs(lo) / (hi - lo)
	return inView, int(math.Round(ratio * float64(n)))
}

// AddTickMarks lights one cell per integer (x, y) pair of the window, unless
// there would be more than TickCap(width) of them. It returns the number of
// cells lit.
func AddTickMarks(g *raster.Grid, xMin, xMax, yMin, yMax float64, opts raster.GraphOptions) int {
	xStart, xEnd := math.Ceil(xMin), math.Floor(xMax)
	yStart, yEnd := math.Ceil(yMin), math.Floor(yMax)
	if xEnd < xStart || yEnd < yStart {
		return 0
	}

	limit := TickCap(opts.Width)
	if (xEnd-xStart+1)*(yEnd-yStart+1) > float64(limit) {
		logging.L().Debug("tick marks skipped", "width", opts.Width, "cap", limit)
		return 0
	}

	xScale := (xMax - xMin) / float64(opts.Width)
	yScale := (yMax - yMin) / float64(opts.Height)

	type cell struct{ row, col int }
	ticks := make([]cell, 0, limit)
	for x := xStart; x <= xEnd; x++ {
		col := int(math.Round((x - xMin) / xScale))
		for y := yStart; y <= yEnd; y++ {
			row := int(math.Round((y - yMin) / yScale))
			if row >= 0 && row < g.Rows && col >= 0 && col < g.Cols {
				ticks = append(ticks, cell{row, col})
			}
		}
	}
	if len(ticks) > limit {
		return 0
	}
	for _, t := range ticks {
		g.Set(t.row, t.col)
	}
	return len(ticks)
}

// AddXAxis lights the row of y = 0 when it is inside the window. It runs
// before the grid is reversed.
func AddXAxis(g *raster.Grid, yMin, yMax float64, height int) {
	if inView, row := AxisInView(yMin, yMax, height); inView {
		g.SetRow(row)
	}
}

// AddYAxis lights the column of x = 0 when it is inside the window.
func AddYAxis(g *raster.Grid, xMin, xMax float64, width int) {
	if inView, col := AxisInView(xMin, xMax, width); inView {
		g.SetCol(col)
	}
}
