package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dasa.cc/vga/torus"
	"dasa.cc/vga/vga3d"
)

var (
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true)
)

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	cloud    *torus.Cloud
	rotor    vga3d.Rotor[float64]
	step     vga3d.Rotor[float64]
	interval time.Duration
	paused   bool
	frames   int

	// requested size, and the size in use after clipping to the terminal
	reqWidth, reqHeight int
	width, height       int
}

func newModel(c *torus.Cloud, step vga3d.Rotor[float64], width, height int, interval time.Duration) model {
	return model{
		cloud:     c,
		rotor:     vga3d.IdentityRotor[float64](),
		step:      step,
		interval:  interval,
		reqWidth:  width,
		reqHeight: height,
		width:     width,
		height:    height,
	}
}

func (m model) Init() tea.Cmd { return tick(m.interval) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
	case tea.WindowSizeMsg:
		// one line is kept for the status bar
		m.width = min(m.reqWidth, msg.Width)
		m.height = min(m.reqHeight, msg.Height-1)
	case tickMsg:
		if !m.paused {
			m.rotor = m.rotor.MulRotor(m.step)
			m.frames++
		}
		return m, tick(m.interval)
	}
	return m, nil
}

func (m model) View() string {
	frame := torus.Frame(m.cloud.Render(m.rotor, m.width, m.height))
	status := fmt.Sprintf("frame %d  half angle %.2f  space pause  q quit", m.frames, m.rotor.HalfAngle())
	return lipgloss.JoinVertical(lipgloss.Left, frameStyle.Render(frame), statusStyle.Render(status))
}

func run(m model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("torus: %w", err)
	}
	return nil
}
