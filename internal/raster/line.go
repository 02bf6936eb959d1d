package raster

// DrawLine lights the cells between (x1, y1) and (x2, y2) using Bresenham's
// algorithm. Steep lines are walked along y so every step advances the
// dominant axis, and endpoints are ordered first, so a line and its reverse
// produce the same cells.
func DrawLine(g *Grid, x1, y1, x2, y2 int) {
	steep := absInt(y2-y1) > absInt(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	derror2 := absInt(y2-y1) * 2
	error2 := 0
	ystep := -1
	if y2 > y1 {
		ystep = 1
	}

	y := y1
	for x := x1; x <= x2; x++ {
		if steep {
			g.Set(x, y)
		} else {
			g.Set(y, x)
		}
		error2 += derror2
		if error2 > dx {
			y += ystep
			error2 -= dx * 2
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
