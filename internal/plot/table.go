package plot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/braillegraph/internal/raster"
)

const tableWidth = 13

var rowStyle = lipgloss.NewStyle().Underline(true)

func round2(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// Table renders samples as a boxed two-column X/Y listing rounded to two
// decimals.
func Table(points []raster.Point) string {
	var b strings.Builder
	b.WriteString(upperLeft + strings.Repeat(horizontalBar, tableWidth) + upperRight + " \n")
	b.WriteString(verticalBar + rowStyle.Render(fmt.Sprintf(" %-4s%s %-6s", "X", verticalBar, "Y")) + verticalBar + "\n")
	for _, p := range points {
		b.WriteString(verticalBar + rowStyle.Render(fmt.Sprintf("%-4s %s %-6s", round2(p.X), verticalBar, round2(p.Y))) + verticalBar + "\n")
	}
	b.WriteString(bottomLeft + strings.Repeat(horizontalBar, tableWidth) + bottomRight + " ")
	return b.String()
}
