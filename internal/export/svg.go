package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/braillegraph/internal/raster"
)

const (
	background = "#0a0a0a"
	foreground = "#00ff00"
)

// document wraps the markup written by body in an SVG root of the given
// size over a solid background.
func document(width, height float64, body func(*strings.Builder)) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", background)
	body(&sb)
	sb.WriteString("</svg>")
	return sb.String()
}

// BrailleToSVG draws every raised dot of an encoded graph as a circle of
// diameter 0.8*scale centred in its scale x scale cell.
func BrailleToSVG(chars [][]rune, scale float64) string {
	if len(chars) == 0 {
		return ""
	}
	cols := 0
	for _, row := range chars {
		cols = max(cols, len(row))
	}

	return document(float64(cols*2)*scale, float64(len(chars)*4)*scale, func(sb *strings.Builder) {
		fmt.Fprintf(sb, "<g fill=%q>\n", foreground)
		for row, line := range chars {
			for col, r := range line {
				if _, ok := raster.Decode(r); !ok {
					continue
				}
				for dot := 0; dot < 8; dot++ {
					dx, dy := dot%2, dot/2
					if !raster.DotLit(r, dx, dy) {
						continue
					}
					cx := (float64(col*2+dx) + 0.5) * scale
					cy := (float64(row*4+dy) + 0.5) * scale
					fmt.Fprintf(sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, scale*0.4)
				}
			}
		}
		sb.WriteString("</g>\n")
	})
}

// window is the padded data rectangle mapped onto an image.
type window struct {
	x0, y0, dx, dy float64
}

// fit returns the bounding box of points grown by 10% on every side. A
// zero extent is treated as 1.
func fit(points []raster.Point) window {
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}
	w := window{x0: lo.X, y0: lo.Y, dx: hi.X - lo.X, dy: hi.Y - lo.Y}
	if w.dx == 0 {
		w.dx = 1
	}
	if w.dy == 0 {
		w.dy = 1
	}
	w.x0 -= w.dx * 0.1
	w.y0 -= w.dy * 0.1
	w.dx *= 1.2
	w.dy *= 1.2
	return w
}

// project maps p into a width x height image with y growing upwards.
func (w window) project(p raster.Point, width, height float64) (float64, float64) {
	return (p.X - w.x0) / w.dx * width, height - (p.Y-w.y0)/w.dy*height
}

// PathToSVG draws sampled points as one polyline scaled into a
// width x height image. Fewer than two points yield "".
func PathToSVG(points []raster.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}
	win := fit(points)
	w, h := float64(width), float64(height)

	segments := make([]string, len(points))
	for i, p := range points {
		x, y := win.project(p, w, h)
		segments[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}

	return document(w, h, func(sb *strings.Builder) {
		fmt.Fprintf(sb, "<path fill=\"none\" stroke=%q stroke-width=\"1.5\" d=\"M%s\"/>\n",
			strokeColor, strings.Join(segments, " L"))
	})
}
