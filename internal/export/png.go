package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/braillegraph/internal/raster"
)

var palette = color.Palette{
	color.RGBA{0x0a, 0x0a, 0x0a, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
}

// GridToPNG writes the grid as a two-colour image, one scale x scale block
// per dot. Row 0 of the grid is the top of the image.
func GridToPNG(w io.Writer, g *raster.Grid, scale int) error {
	if scale < 1 {
		return fmt.Errorf("export: scale must be at least 1, got %d", scale)
	}
	src := image.NewPaletted(image.Rect(0, 0, g.Cols, g.Rows), palette)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Lit(row, col) {
				src.SetColorIndex(col, row, 1)
			}
		}
	}
	if scale == 1 {
		return png.Encode(w, src)
	}

	dst := image.NewPaletted(image.Rect(0, 0, g.Cols*scale, g.Rows*scale), palette)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return png.Encode(w, dst)
}
