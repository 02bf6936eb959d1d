// Package cube rotates a wireframe cube about an anchor point and rasterizes
// its edges into braille frames.
package cube

import (
	"math"

	"github.com/san-kum/braillegraph/internal/raster"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default per-tick rotation in degrees.
const (
	DefaultRotateX = 10.0
	DefaultRotateY = 11.0
	DefaultRotateZ = 12.0
)

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
	axisZ = r3.Vec{Z: 1}
)

// Edges joins the cube vertices: front face, back face, then the four
// connecting edges.
var Edges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Wireframe holds pixel-space cube vertices and the anchor they rotate
// about. The anchor itself never moves.
type Wireframe struct {
	Vertices [8]r3.Vec
	Anchor   r3.Vec
	opts     raster.GraphOptions
}

// New places a cube in the upper-left quarter of the grid, its faces
// width/4 wide, height/4 tall and height/4 deep, anchored at the centre of
// its front face projected onto z = 0.
func New(opts raster.GraphOptions) *Wireframe {
	hor := float64(opts.Width / 4)
	ver := float64(opts.Height / 4)
	depth := float64(opts.Height/4) / 2

	w := &Wireframe{opts: opts}
	i := 0
	for _, z := range []float64{depth, -depth} {
		for _, x := range []float64{hor, 2 * hor} {
			for _, y := range []float64{ver, 2 * ver} {
				w.Vertices[i] = r3.Vec{X: x, Y: y, Z: z}
				i++
			}
		}
	}
	w.Anchor = r3.Vec{
		X: (w.Vertices[0].X + w.Vertices[3].X) / 2,
		Y: (w.Vertices[0].Y + w.Vertices[3].Y) / 2,
	}
	return w
}

// Rotate turns every vertex about the anchor by the given angles in
// degrees, applying the X, Y and Z rotations in sequence.
func (w *Wireframe) Rotate(degX, degY, degZ float64) {
	rx := r3.NewRotation(degX*math.Pi/180, axisX)
	ry := r3.NewRotation(degY*math.Pi/180, axisY)
	rz := r3.NewRotation(degZ*math.Pi/180, axisZ)

	for i, v := range w.Vertices {
		d := r3.Sub(v, w.Anchor)
		d = rz.Rotate(ry.Rotate(rx.Rotate(d)))
		w.Vertices[i] = r3.Add(d, w.Anchor)
	}
}

// Rasterize draws the twelve edges using their x and y coordinates.
func (w *Wireframe) Rasterize() *raster.Grid {
	g := raster.NewGrid(w.opts)
	for _, e := range Edges {
		a, b := w.Vertices[e[0]], w.Vertices[e[1]]
		raster.DrawLine(g, int(a.X), int(a.Y), int(b.X), int(b.Y))
	}
	return g
}

// Frame returns the current cube as unframed braille text, one line per
// character row.
func (w *Wireframe) Frame() string {
	return raster.Lines(raster.Encode(w.Rasterize(), w.opts))
}
