package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/braillegraph/internal/cube"
	"github.com/san-kum/braillegraph/internal/logging"
	"github.com/san-kum/braillegraph/internal/raster"
)

// CubeSettings controls the rotation loop.
type CubeSettings struct {
	Interval         time.Duration
	RotX, RotY, RotZ float64
}

func DefaultCubeSettings() CubeSettings {
	return CubeSettings{
		Interval: 100 * time.Millisecond,
		RotX:     cube.DefaultRotateX,
		RotY:     cube.DefaultRotateY,
		RotZ:     cube.DefaultRotateZ,
	}
}

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// CubeModel rotates the wireframe once per tick until a quit key arrives.
type CubeModel struct {
	wire     *cube.Wireframe
	settings CubeSettings
	theme    Theme
	frame    string
	frames   int
	quitting bool
}

func NewCubeModel(opts raster.GraphOptions, settings CubeSettings, theme Theme) CubeModel {
	w := cube.New(opts)
	return CubeModel{
		wire:     w,
		settings: settings,
		theme:    theme,
		frame:    w.Frame(),
	}
}

func (m CubeModel) Init() tea.Cmd { return tick(m.settings.Interval) }

func (m CubeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Quit
		}
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.wire.Rotate(m.settings.RotX, m.settings.RotY, m.settings.RotZ)
		m.frame = m.wire.Frame()
		m.frames++
		logging.L().Debug("cube frame", "frame", m.frames)
		return m, tick(m.settings.Interval)
	}
	return m, nil
}

func (m CubeModel) View() string {
	return m.theme.frame(m.frame) + "\n" + m.theme.hint("q", "quit")
}

// Frames returns the number of rotations applied so far.
func (m CubeModel) Frames() int { return m.frames }

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return true
	}
	return false
}

// RunCube blocks until the user quits the rotation loop.
func RunCube(opts raster.GraphOptions, settings CubeSettings, theme Theme, progOpts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewCubeModel(opts, settings, theme), progOpts...).Run()
	return err
}
