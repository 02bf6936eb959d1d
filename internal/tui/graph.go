package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/braillegraph/internal/plot"
	"github.com/san-kum/braillegraph/internal/raster"
)

// Viewport is the x window owned by an animation loop.
type Viewport struct {
	XMin, XMax float64
}

// PanModel redraws a graph as the arrow keys shift its x window by one
// unit. A frame that fails to render leaves the viewport and the previous
// frame untouched and shows the error instead.
type PanModel struct {
	renderer  *plot.Renderer
	equations string
	opts      raster.GraphOptions
	theme     Theme
	view      Viewport
	frame     string
	err       error
}

// NewPanModel renders the first frame. An error here means nothing could be
// drawn and the loop should not start.
func NewPanModel(r *plot.Renderer, equations string, view Viewport, opts raster.GraphOptions, theme Theme) (PanModel, error) {
	frame, err := r.Graph(equations, view.XMin, view.XMax, opts)
	if err != nil {
		return PanModel{}, err
	}
	return PanModel{
		renderer:  r,
		equations: equations,
		opts:      opts,
		theme:     theme,
		view:      view,
		frame:     frame,
	}, nil
}

func (m PanModel) Init() tea.Cmd { return nil }

func (m PanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if isQuit(key) {
		return m, tea.Quit
	}

	next := m.view
	switch key.String() {
	case "left", "h":
		next.XMin--
		next.XMax--
	case "right", "l":
		next.XMin++
		next.XMax++
	default:
		return m, nil
	}

	frame, err := m.renderer.Graph(m.equations, next.XMin, next.XMax, m.opts)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.view, m.frame, m.err = next, frame, nil
	return m, nil
}

func (m PanModel) View() string {
	s := m.theme.frame(m.frame) + "\n"
	if m.err != nil {
		s += m.theme.ErrorLine(m.err.Error()) + "\n"
	}
	return s + m.theme.hint("←/→", "pan") + m.theme.hint("q", "quit")
}

// Viewport returns the current x window.
func (m PanModel) Viewport() Viewport { return m.view }

// Err returns the error of the last failed frame, if any.
func (m PanModel) Err() error { return m.err }

// RunPan blocks until the user quits the panning loop.
func RunPan(r *plot.Renderer, equations string, view Viewport, opts raster.GraphOptions, theme Theme, progOpts ...tea.ProgramOption) error {
	m, err := NewPanModel(r, equations, view, opts, theme)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, progOpts...).Run()
	return err
}

// AnimateSettings controls the zoom-out animation.
type AnimateSettings struct {
	Frames int
	Delay  time.Duration
}

func DefaultAnimateSettings() AnimateSettings {
	return AnimateSettings{Frames: 100, Delay: 90 * time.Millisecond}
}

// AnimateModel widens the viewport by one unit on each side per frame.
// Frame n shows [XMin-n, XMax+n].
type AnimateModel struct {
	renderer  *plot.Renderer
	equations string
	opts      raster.GraphOptions
	settings  AnimateSettings
	theme     Theme
	base      Viewport
	n         int
	frame     string
	err       error
}

func NewAnimateModel(r *plot.Renderer, equations string, view Viewport, opts raster.GraphOptions, settings AnimateSettings, theme Theme) (AnimateModel, error) {
	frame, err := r.Graph(equations, view.XMin, view.XMax, opts)
	if err != nil {
		return AnimateModel{}, err
	}
	return AnimateModel{
		renderer:  r,
		equations: equations,
		opts:      opts,
		settings:  settings,
		theme:     theme,
		base:      view,
		frame:     frame,
	}, nil
}

func (m AnimateModel) Init() tea.Cmd { return tick(m.settings.Delay) }

func (m AnimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			return m, tea.Quit
		}
	case tickMsg:
		if m.n+1 >= m.settings.Frames {
			return m, tea.Quit
		}
		m.n++
		w := float64(m.n)
		frame, err := m.renderer.Graph(m.equations, m.base.XMin-w, m.base.XMax+w, m.opts)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.frame = frame
		return m, tick(m.settings.Delay)
	}
	return m, nil
}

func (m AnimateModel) View() string {
	s := m.theme.frame(m.frame) + "\n"
	if m.err != nil {
		s += m.theme.ErrorLine(m.err.Error()) + "\n"
	}
	return s
}

// Frame returns the index of the frame on screen.
func (m AnimateModel) Frame() int { return m.n }

// Err returns the error that stopped the animation, if any.
func (m AnimateModel) Err() error { return m.err }

// RunAnimate plays the animation and returns any render error that cut it short.
func RunAnimate(r *plot.Renderer, equations string, view Viewport, opts raster.GraphOptions, settings AnimateSettings, theme Theme, progOpts ...tea.ProgramOption) error {
	m, err := NewAnimateModel(r, equations, view, opts, settings, theme)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return err
	}
	if am, ok := final.(AnimateModel); ok {
		return am.Err()
	}
	return nil
}
