package raster

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOptions indicates dimensions that cannot be folded into 2x4 braille blocks.
var ErrInvalidOptions = errors.New("raster: invalid graph options")

// Point is one evaluated sample or curve vertex.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// NormalizedPoint is a sample placed on the grid. YAcc keeps the original
// y value so samples outside the visible window can be filtered afterwards.
type NormalizedPoint struct {
	X, Y int
	YAcc float64
}

// GraphOptions is the per-render configuration.
type GraphOptions struct {
	YMin, YMax    float64
	Width, Height int
}

// Validate checks that the canvas folds into whole braille blocks (width a
// positive multiple of 2, height a positive multiple of 4) and that both y
// bounds are finite.
func (o GraphOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 || o.Width%2 != 0 || o.Height%4 != 0 {
		return fmt.Errorf("%w: width must be a positive multiple of 2 and height a positive multiple of 4, got %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if !finite(o.YMin) || !finite(o.YMax) {
		return fmt.Errorf("%w: y bounds must be finite, got [%g, %g]", ErrInvalidOptions, o.YMin, o.YMax)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CharRows and CharCols give the size of the encoded character matrix.
func (o GraphOptions) CharRows() int { return o.Height / 4 }
func (o GraphOptions) CharCols() int { return o.Width / 2 }
