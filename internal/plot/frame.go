package plot

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	upperLeft     = "┌"
	upperRight    = "┐"
	bottomLeft    = "└"
	bottomRight   = "┘"
	horizontalBar = "─"
	verticalBar   = "│"
)

// boundsPadding trails the x bounds line.
const boundsPadding = 5

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func interiorWidth(chars [][]rune) int {
	if len(chars) == 0 {
		return 0
	}
	return len(chars[0])
}

func writeBody(b *strings.Builder, chars [][]rune) {
	for _, row := range chars {
		b.WriteString(verticalBar)
		b.WriteString(string(row))
		b.WriteString(verticalBar)
		b.WriteByte('\n')
	}
}

func boundsLine(xMin, xMax float64, gap int) string {
	return formatBound(xMin) + strings.Repeat(" ", max(gap-1, 0)) + formatBound(xMax) + strings.Repeat(" ", boundsPadding)
}

// Frame wraps a graph in a box. yMax labels the top border, yMin the bottom
// border, and the x bounds follow on the last line.
func Frame(chars [][]rune, xMin, xMax, yMin, yMax float64) string {
	gap := interiorWidth(chars)
	bar := strings.Repeat(horizontalBar, gap)

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s%.2f\n", upperLeft, bar, upperRight, yMax)
	writeBody(&b, chars)
	fmt.Fprintf(&b, "%s%s%s%.2f\n", bottomLeft, bar, bottomRight, yMin)
	b.WriteString(boundsLine(xMin, xMax, gap))
	return b.String()
}

// CurveFrame frames pixel-space output whose row 0 is printed first: the x
// bounds come above the box, yMin labels the top border and yMax the bottom.
func CurveFrame(chars [][]rune, xMin, xMax, yMin, yMax float64) string {
	gap := interiorWidth(chars)
	bar := strings.Repeat(horizontalBar, gap)

	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(boundsLine(xMin, xMax, gap))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s%s%s%.2f\n", upperLeft, bar, upperRight, yMin)
	writeBody(&b, chars)
	fmt.Fprintf(&b, "%s%s%s%.2f\n", bottomLeft, bar, bottomRight, yMax)
	return b.String()
}
