package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/braillegraph/internal/eval"
	"github.com/san-kum/braillegraph/internal/plot"
	"github.com/san-kum/braillegraph/internal/raster"
)

var (
	smallOptions = raster.GraphOptions{YMin: -7, YMax: 7, Width: 80, Height: 40}
	quitKey      = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
	leftKey      = tea.KeyMsg{Type: tea.KeyLeft}
	rightKey     = tea.KeyMsg{Type: tea.KeyRight}
)

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

var _ = Describe("Cube loop", func() {
	It("rotates and redraws on every tick", func() {
		m := NewCubeModel(smallOptions, DefaultCubeSettings(), ThemeMinimal)
		first := m.frame
		Expect(m.Init()).NotTo(BeNil())

		next, cmd := m.Update(tickMsg(time.Now()))
		Expect(cmd).NotTo(BeNil())
		cm := next.(CubeModel)
		Expect(cm.Frames()).To(Equal(1))
		Expect(cm.frame).NotTo(Equal(first))
		Expect(cm.View()).To(ContainSubstring("quit"))
	})

	It("terminates on q", func() {
		m := NewCubeModel(smallOptions, DefaultCubeSettings(), ThemeMinimal)
		next, cmd := m.Update(quitKey)
		Expect(isQuitCmd(cmd)).To(BeTrue())

		// a tick already in flight must not rotate after quitting
		after, cmd := next.Update(tickMsg(time.Now()))
		Expect(cmd).To(BeNil())
		Expect(after.(CubeModel).Frames()).To(Equal(0))
	})

	It("ignores other keys", func() {
		m := NewCubeModel(smallOptions, DefaultCubeSettings(), ThemeMinimal)
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
		Expect(cmd).To(BeNil())
		Expect(next.(CubeModel).Frames()).To(Equal(0))
	})
})

var _ = Describe("Pan loop", func() {
	renderer := plot.NewRenderer(eval.NewExpr())

	It("shifts the viewport with the arrow keys", func() {
		m, err := NewPanModel(renderer, "y=x^2", Viewport{-2, 2}, smallOptions, ThemeMinimal)
		Expect(err).NotTo(HaveOccurred())

		next, _ := m.Update(rightKey)
		Expect(next.(PanModel).Viewport()).To(Equal(Viewport{-1, 3}))

		next, _ = next.Update(leftKey)
		next, _ = next.Update(leftKey)
		Expect(next.(PanModel).Viewport()).To(Equal(Viewport{-3, 1}))
		Expect(next.(PanModel).View()).To(ContainSubstring("┌"))
	})

	It("keeps the last good frame when a render fails", func() {
		calls := 0
		p := eval.ProviderFunc(func(eq string, xMin, xMax, step float64) ([]raster.Point, error) {
			calls++
			if calls > 1 {
				return nil, errors.New("domain error")
			}
			return eval.NewExpr().Plot(eq, xMin, xMax, step)
		})
		m, err := NewPanModel(plot.NewRenderer(p), "y=x", Viewport{-2, 2}, smallOptions, ThemeMinimal)
		Expect(err).NotTo(HaveOccurred())
		before := m.frame

		next, _ := m.Update(rightKey)
		pm := next.(PanModel)
		Expect(pm.Viewport()).To(Equal(Viewport{-2, 2}))
		Expect(pm.frame).To(Equal(before))
		Expect(pm.Err()).To(MatchError("domain error"))
		Expect(pm.View()).To(ContainSubstring("domain error"))
	})

	It("refuses to start on a bad equation", func() {
		_, err := NewPanModel(renderer, "y=x+", Viewport{-2, 2}, smallOptions, ThemeMinimal)
		Expect(errors.Is(err, eval.ErrEvaluation)).To(BeTrue())
	})

	It("quits on q", func() {
		m, err := NewPanModel(renderer, "y=x", Viewport{-2, 2}, smallOptions, ThemeMinimal)
		Expect(err).NotTo(HaveOccurred())
		_, cmd := m.Update(quitKey)
		Expect(isQuitCmd(cmd)).To(BeTrue())
	})
})

var _ = Describe("Animated graph", func() {
	renderer := plot.NewRenderer(eval.NewExpr())

	It("widens the window each frame and stops after the last one", func() {
		settings := AnimateSettings{Frames: 3, Delay: time.Millisecond}
		m, err := NewAnimateModel(renderer, "y=sin(x)", Viewport{-1, 1}, smallOptions, settings, ThemeMinimal)
		Expect(err).NotTo(HaveOccurred())

		var model tea.Model = m
		var cmd tea.Cmd
		for i := 1; i < settings.Frames; i++ {
			model, cmd = model.Update(tickMsg(time.Now()))
			Expect(isQuitCmd(cmd)).To(BeFalse())
			Expect(model.(AnimateModel).Frame()).To(Equal(i))
		}
		Expect(model.View()).To(ContainSubstring("-3"))

		_, cmd = model.Update(tickMsg(time.Now()))
		Expect(isQuitCmd(cmd)).To(BeTrue())
	})

	It("stops on a failed frame and reports it", func() {
		calls := 0
		p := eval.ProviderFunc(func(eq string, xMin, xMax, step float64) ([]raster.Point, error) {
			calls++
			if calls > 1 {
				return nil, errors.New("overflow")
			}
			return eval.NewExpr().Plot(eq, xMin, xMax, step)
		})
		m, err := NewAnimateModel(plot.NewRenderer(p), "y=x", Viewport{-1, 1}, smallOptions, DefaultAnimateSettings(), ThemeMinimal)
		Expect(err).NotTo(HaveOccurred())

		next, cmd := m.Update(tickMsg(time.Now()))
		Expect(isQuitCmd(cmd)).To(BeTrue())
		Expect(next.(AnimateModel).Err()).To(MatchError("overflow"))
	})
})

var _ = Describe("Themes", func() {
	It("falls back to minimal for unknown names", func() {
		Expect(GetTheme("nope").Name).To(Equal("minimal"))
		Expect(GetTheme("ocean")).To(Equal(ThemeOcean))
		Expect(ThemeNames()).To(ContainElement("retro"))
	})
})
