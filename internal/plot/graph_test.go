package plot

import (
	"errors"
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/braillegraph/internal/eval"
	"github.com/san-kum/braillegraph/internal/raster"
)

// sampled builds a provider that scans f the same way the expression
// provider does.
func sampled(f func(x float64) float64) eval.Provider {
	return eval.ProviderFunc(func(_ string, xMin, xMax, step float64) ([]raster.Point, error) {
		n := int(math.Floor((xMax-xMin)/step+1e-6)) + 1
		points := make([]raster.Point, n)
		for i := range points {
			x := xMin + float64(i)*step
			points[i] = raster.Pt(x, f(x))
		}
		return points, nil
	})
}

func hasInk(s string) bool {
	for _, r := range s {
		if r > raster.BrailleBase && r <= raster.BrailleBase+0xff {
			return true
		}
	}
	return false
}

var _ = Describe("Graph", func() {
	defaultOptions := raster.GraphOptions{YMin: -7, YMax: 7, Width: 240, Height: 120}

	It("renders y=x end to end", func() {
		r := NewRenderer(eval.NewExpr())
		out, err := r.Graph("y=x", -2, 2, defaultOptions)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("┌"))
		Expect(out).To(ContainSubstring("┘"))
		Expect(hasInk(out)).To(BeTrue())

		lines := strings.Split(out, "\n")
		Expect(lines).To(HaveLen(30 + 3))
		Expect(lines[0]).To(HaveSuffix("2.50"))
		Expect(lines[31]).To(HaveSuffix("-2.50"))
		Expect(lines[32]).To(HavePrefix("-2 "))
	})

	It("lights the y-axis when the domain straddles zero", func() {
		res, err := NewRenderer(sampled(func(x float64) float64 { return x })).Render("y=x", -2, 2, defaultOptions)
		Expect(err).NotTo(HaveOccurred())
		for row := 0; row < res.Grid.Rows; row++ {
			Expect(res.Grid.Lit(row, 120)).To(BeTrue())
		}
		Expect(res.Chars).To(HaveLen(30))
		Expect(res.Chars[0]).To(HaveLen(120))
	})

	It("snaps the y window to nearby sample extremes", func() {
		res, err := NewRenderer(sampled(func(x float64) float64 { return x })).Render("y=x", -2, 2, defaultOptions)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.YMax).To(BeNumerically("~", 2.5, 1e-9))
		Expect(res.YMin).To(BeNumerically("~", -2.5, 1e-9))
	})

	It("keeps requested bounds far from the samples", func() {
		opts := raster.GraphOptions{YMin: -1000, YMax: 1000, Width: 80, Height: 40}
		res, err := NewRenderer(sampled(func(float64) float64 { return 0 })).Render("y=0", -1000, 1000, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.YMax).To(Equal(1000.5))
		Expect(res.YMin).To(Equal(-1000.5))

		// no ticks: only the flat curve, the x-axis on the same row, and the y-axis
		Expect(res.Ticks).To(Equal(0))
		Expect(res.Grid.Count()).To(Equal(res.Grid.Cols + res.Grid.Rows - 1))
		for col := 0; col < res.Grid.Cols; col++ {
			Expect(res.Grid.Lit(20, col)).To(BeTrue())
		}
	})

	It("overlays several equations on one grid", func() {
		calls := 0
		p := eval.ProviderFunc(func(eq string, xMin, xMax, step float64) ([]raster.Point, error) {
			calls++
			return sampled(func(x float64) float64 {
				if eq == "a" {
					return 1
				}
				return -1
			}).Plot(eq, xMin, xMax, step)
		})
		res, err := NewRenderer(p).Render("a | b", 1, 3, raster.GraphOptions{YMin: -7, YMax: 7, Width: 80, Height: 40})
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(2))
		Expect(res.YMax).To(Equal(1.5))
		Expect(res.YMin).To(Equal(-1.5))
	})

	It("survives a NaN sample", func() {
		p := eval.ProviderFunc(func(string, float64, float64, float64) ([]raster.Point, error) {
			return []raster.Point{
				raster.Pt(-1, 1),
				raster.Pt(math.NaN(), 3),
				raster.Pt(0, 2),
				raster.Pt(1, math.NaN()),
				raster.Pt(2, 1),
			}, nil
		})
		out, err := NewRenderer(p).Graph("y=whatever", -1, 2, raster.GraphOptions{YMin: -7, YMax: 7, Width: 80, Height: 40})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("┌"))
	})

	It("surfaces evaluation failures verbatim", func() {
		diag := errors.New("Invalid input at character 8")
		p := eval.ProviderFunc(func(string, float64, float64, float64) ([]raster.Point, error) {
			return nil, diag
		})
		out, err := NewRenderer(p).Graph("(3+2+1)_2", -1, 1, defaultOptions)
		Expect(out).To(BeEmpty())
		Expect(err).To(MatchError("Invalid input at character 8"))
		Expect(errors.Is(err, diag)).To(BeTrue())

		var evalErr *EvalError
		Expect(errors.As(err, &evalErr)).To(BeTrue())
		Expect(evalErr.Equation).To(Equal("(3+2+1)_2"))
	})

	It("fails the whole render when one of several equations fails", func() {
		_, err := NewRenderer(eval.NewExpr()).Graph("y=x|y=x+", -1, 1, defaultOptions)
		Expect(errors.Is(err, eval.ErrEvaluation)).To(BeTrue())
	})

	It("rejects degenerate viewports before sampling", func() {
		called := false
		p := eval.ProviderFunc(func(string, float64, float64, float64) ([]raster.Point, error) {
			called = true
			return nil, nil
		})
		_, err := NewRenderer(p).Graph("y=x", 2, 2, defaultOptions)
		Expect(errors.Is(err, ErrDegenerateViewport)).To(BeTrue())
		_, err = NewRenderer(p).Graph("y=x", 3, -3, defaultOptions)
		Expect(errors.Is(err, ErrDegenerateViewport)).To(BeTrue())
		Expect(called).To(BeFalse())
	})

	It("rejects invalid dimensions and empty equations", func() {
		r := NewRenderer(eval.NewExpr())
		_, err := r.Graph("y=x", -1, 1, raster.GraphOptions{YMin: -1, YMax: 1, Width: 81, Height: 40})
		Expect(errors.Is(err, raster.ErrInvalidOptions)).To(BeTrue())
		_, err = r.Graph("y=x||y=2", -1, 1, defaultOptions)
		Expect(errors.Is(err, ErrEmptyEquation)).To(BeTrue())
	})

	It("rejects non-finite y bounds instead of drawing", func() {
		r := NewRenderer(eval.NewExpr())
		for _, opts := range []raster.GraphOptions{
			{YMin: math.NaN(), YMax: 7, Width: 80, Height: 40},
			{YMin: -7, YMax: math.Inf(1), Width: 80, Height: 40},
		} {
			var err error
			Expect(func() { _, err = r.Graph("y=x^10", -5, 5, opts) }).NotTo(Panic())
			Expect(errors.Is(err, raster.ErrInvalidOptions)).To(BeTrue())
		}
	})

	It("never lets the sampling factor drop below one", func() {
		Expect(SamplingFactor(8)).To(Equal(1.0))
		Expect(SamplingFactor(240)).To(Equal(15.0))
	})
})
