package plot

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/braillegraph/internal/raster"
)

var _ = Describe("Axis and tick overlays", func() {
	It("finds the y-axis inside a straddling window", func() {
		inView, col := AxisInView(-5, 5, 240)
		Expect(inView).To(BeTrue())
		Expect(col).To(Equal(120))
	})

	It("reports an axis outside the window", func() {
		inView, _ := AxisInView(1, 5, 240)
		Expect(inView).To(BeFalse())
		inView, _ = AxisInView(-5, 0, 240)
		Expect(inView).To(BeFalse())
	})

	It("lights the whole y-axis column", func() {
		opts := raster.GraphOptions{Width: 80, Height: 40}
		g := raster.NewGrid(opts)
		AddYAxis(g, -5, 5, opts.Width)
		for row := 0; row < g.Rows; row++ {
			Expect(g.Lit(row, 40)).To(BeTrue())
		}
		Expect(g.Count()).To(Equal(g.Rows))
	})

	It("lights the whole x-axis row", func() {
		opts := raster.GraphOptions{Width: 80, Height: 40}
		g := raster.NewGrid(opts)
		AddXAxis(g, -1, 3, opts.Height)
		for col := 0; col < g.Cols; col++ {
			Expect(g.Lit(10, col)).To(BeTrue())
		}
		Expect(g.Count()).To(Equal(g.Cols))
	})

	It("leaves the grid alone when axes are out of view", func() {
		opts := raster.GraphOptions{Width: 80, Height: 40}
		g := raster.NewGrid(opts)
		AddXAxis(g, 1, 3, opts.Height)
		AddYAxis(g, 2, 9, opts.Width)
		Expect(g.Count()).To(Equal(0))
	})

	DescribeTable("tick cap by width band",
		func(width, want int) {
			Expect(TickCap(width)).To(Equal(want))
		},
		Entry("narrow", 74, 80),
		Entry("small edge", 76, 160),
		Entry("medium", 150, 160),
		Entry("large", 300, 300),
		Entry("wide", 301, 400),
	)

	It("places integer ticks on small windows", func() {
		opts := raster.GraphOptions{Width: 80, Height: 40}
		g := raster.NewGrid(opts)
		n := AddTickMarks(g, -2, 2, -2, 2, opts)
		Expect(n).To(Equal(25))
		Expect(g.Count()).To(Equal(25))
		Expect(g.Lit(20, 40)).To(BeTrue())
		Expect(g.Lit(0, 0)).To(BeTrue())
		Expect(g.Lit(40, 80)).To(BeTrue())
	})

	It("skips ticks when they would clutter the graph", func() {
		opts := raster.GraphOptions{Width: 80, Height: 40}
		g := raster.NewGrid(opts)
		Expect(AddTickMarks(g, -1000, 1000, -1000, 1000, opts)).To(Equal(0))
		Expect(g.Count()).To(Equal(0))
	})

	It("skips ticks when no integer fits", func() {
		opts := raster.GraphOptions{Width: 80, Height: 40}
		g := raster.NewGrid(opts)
		Expect(AddTickMarks(g, 0.1, 0.9, -3, 3, opts)).To(Equal(0))
	})
})
