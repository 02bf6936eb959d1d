package raster

import "strings"

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const BrailleBase rune = 0x2800

var pixelMap = [4][2]uint8{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Encode folds every 2x4 block of the grid into one braille character and
// returns a matrix of opts.CharRows() x opts.CharCols() runes.
//
// Cells are scanned row-major. A cell already folded into an earlier block
// is skipped; otherwise it starts a new block whose dots are read down the
// left column (1-3), down the right column (4-6), then across the bottom
// row (7-8). Dots that fall outside the grid contribute no bit.
func Encode(g *Grid, opts GraphOptions) [][]rune {
	rows, cols := opts.CharRows(), opts.CharCols()
	chars := make([][]rune, rows)
	for i := range chars {
		chars[i] = make([]rune, 0, cols)
	}

	visited := make([]bool, len(g.cells))

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if visited[g.index(row, col)] {
				continue
			}

			var bits uint8
			var shift uint
			take := func(r, c int) {
				if !g.inBounds(r, c) {
					return
				}
				i := g.index(r, c)
				if g.cells[i] {
					bits |= 1 << shift
				}
				visited[i] = true
				shift++
			}

			for dx := 0; dx <= 1; dx++ {
				for dy := 0; dy <= 2; dy++ {
					take(row+dy, col+dx)
				}
			}
			take(row+3, col)
			take(row+3, col+1)

			// the trailing row and column of the grid only form partial blocks
			if r := row / 4; r < rows && len(chars[r]) < cols {
				chars[r] = append(chars[r], BrailleBase+rune(bits))
			}
		}
	}
	return chars
}

// Decode returns the dot pattern of a braille character.
func Decode(r rune) (uint8, bool) {
	if r < BrailleBase || r > BrailleBase+0xff {
		return 0, false
	}
	return uint8(r - BrailleBase), true
}

// DotLit reports whether the dot at (dx, dy) inside a braille character is raised.
func DotLit(r rune, dx, dy int) bool {
	pattern, ok := Decode(r)
	if !ok || dx < 0 || dx > 1 || dy < 0 || dy > 3 {
		return false
	}
	return pattern&pixelMap[dy][dx] != 0
}

// Lines joins a character matrix into newline-terminated text rows.
func Lines(chars [][]rune) string {
	var b strings.Builder
	for _, row := range chars {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
