// Package bezier generates dense point sequences along quadratic and cubic
// Bezier curves in pixel space and draws them on a braille grid.
package bezier

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/braillegraph/internal/raster"
)

// DefaultStep is the parameter increment between generated samples.
const DefaultStep = 0.001

// ErrControlPoints indicates a control point count other than 3 or 4.
var ErrControlPoints = errors.New("bezier: need 3 (quadratic) or 4 (cubic) control points")

// Curve is a parametric curve over t in [0, 1].
type Curve interface {
	Eval(t float64) raster.Point
	Start() raster.Point
	End() raster.Point
	// Controls returns the control points between the endpoints.
	Controls() []raster.Point
}

// Lerp interpolates linearly from a to b.
func Lerp(a, b raster.Point, t float64) raster.Point {
	return raster.Point{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}

// Quad is a quadratic Bezier curve with control point P1.
type Quad struct {
	P0, P1, P2 raster.Point
}

// Eval evaluates the curve at t using de Casteljau's construction.
func (q Quad) Eval(t float64) raster.Point {
	return Lerp(Lerp(q.P0, q.P1, t), Lerp(q.P1, q.P2, t), t)
}

func (q Quad) Start() raster.Point      { return q.P0 }
func (q Quad) End() raster.Point        { return q.P2 }
func (q Quad) Controls() []raster.Point { return []raster.Point{q.P1} }

// Cubic is a cubic Bezier curve with control points P1 and P2.
type Cubic struct {
	P0, P1, P2, P3 raster.Point
}

// Eval evaluates the curve at t using de Casteljau's construction.
func (c Cubic) Eval(t float64) raster.Point {
	a := Lerp(c.P0, c.P1, t)
	b := Lerp(c.P1, c.P2, t)
	d := Lerp(c.P2, c.P3, t)
	return Lerp(Lerp(a, b, t), Lerp(b, d, t), t)
}

func (c Cubic) Start() raster.Point      { return c.P0 }
func (c Cubic) End() raster.Point        { return c.P3 }
func (c Cubic) Controls() []raster.Point { return []raster.Point{c.P1, c.P2} }

// FromPoints builds a Quad from 3 points or a Cubic from 4.
func FromPoints(points []raster.Point) (Curve, error) {
	switch len(points) {
	case 3:
		return Quad{points[0], points[1], points[2]}, nil
	case 4:
		return Cubic{points[0], points[1], points[2], points[3]}, nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrControlPoints, len(points))
	}
}

// Samples evaluates c at t = 0, step, 2*step, ... up to and including t = 1.
func Samples(c Curve, step float64) []raster.Point {
	if step <= 0 || step > 1 {
		step = DefaultStep
	}
	n := int(math.Round(1 / step))
	points := make([]raster.Point, 0, n+1)
	for i := 0; i < n; i++ {
		points = append(points, c.Eval(float64(i)*step))
	}
	return append(points, c.Eval(1))
}

// Markers surrounds each control point with four diagonal neighbours one
// pixel away, clamped to the grid, so it stays visible where the curve
// passes over it. The control point itself is included.
func Markers(controls []raster.Point, width, height float64) []raster.Point {
	offsets := [2]float64{-1, 1}
	out := make([]raster.Point, 0, len(controls)*5)
	for _, cp := range controls {
		for _, ox := range offsets {
			for _, oy := range offsets {
				out = append(out, raster.Point{
					X: clamp(cp.X+ox, 0, width-1),
					Y: clamp(cp.Y+oy, 0, height-1),
				})
			}
		}
		out = append(out, cp)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
