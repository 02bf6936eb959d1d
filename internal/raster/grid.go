package raster

// Grid is a (Height+1) x (Width+1) matrix of lit cells stored row-major.
// Row 0 is the first row handed to the encoder, which prints it on top.
type Grid struct {
	Rows, Cols int
	cells      []bool
}

func NewGrid(opts GraphOptions) *Grid {
	rows, cols := opts.Height+1, opts.Width+1
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.Rows && col < g.Cols
}

func (g *Grid) index(row, col int) int { return row*g.Cols + col }

// Set lights a cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int) {
	if !g.inBounds(row, col) {
		return
	}
	g.cells[g.index(row, col)] = true
}

// Lit reports whether a cell is lit; out-of-range cells are unlit.
func (g *Grid) Lit(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[g.index(row, col)]
}

// SetRow lights every cell in a row.
func (g *Grid) SetRow(row int) {
	if row < 0 || row >= g.Rows {
		return
	}
	for col := 0; col < g.Cols; col++ {
		g.cells[g.index(row, col)] = true
	}
}

// SetCol lights every cell in a column.
func (g *Grid) SetCol(col int) {
	if col < 0 || col >= g.Cols {
		return
	}
	for row := 0; row < g.Rows; row++ {
		g.cells[g.index(row, col)] = true
	}
}

// ReverseRows flips the grid vertically so the highest y ends up on row 0.
func (g *Grid) ReverseRows() {
	tmp := make([]bool, g.Cols)
	for top, bottom := 0, g.Rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := g.cells[g.index(top, 0):g.index(top+1, 0)]
		b := g.cells[g.index(bottom, 0):g.index(bottom+1, 0)]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// Count returns the number of lit cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}
