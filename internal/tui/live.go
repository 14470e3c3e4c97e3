// Package tui is an interactive spectrum explorer: adjust the physical
// conditions with the keyboard and watch the transmission spectrum
// recompute. The wavelength window stays fixed, so every recompute takes
// the engine's re-solve fast path.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkruger/transpec/internal/plot"
	"github.com/dkruger/transpec/internal/sim"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	paramStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type computeDoneMsg struct {
	err     error
	elapsed time.Duration
}

type Model struct {
	sim          *sim.Simulator
	wlMin, wlMax float64

	computing bool
	elapsed   time.Duration
	err       error
	width     int
}

func New(simulator *sim.Simulator, wlMin, wlMax float64) Model {
	return Model{
		sim:       simulator,
		wlMin:     wlMin,
		wlMax:     wlMax,
		computing: true, // Init fires the first compute
		width:     80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.compute()
}

func (m Model) compute() tea.Cmd {
	s := m.sim
	wlMin, wlMax := m.wlMin, m.wlMax
	return func() tea.Msg {
		start := time.Now()
		err := s.Compute(context.Background(), wlMin, wlMax)
		return computeDoneMsg{err: err, elapsed: time.Since(start)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case computeDoneMsg:
		m.computing = false
		m.err = msg.err
		m.elapsed = msg.elapsed
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "ctrl+c" {
		m.sim.ReleaseDevice()
		return m, tea.Quit
	}

	// The simulator is single-owner state; parameter edits wait until the
	// in-flight compute lands.
	if m.computing {
		return m, nil
	}

	switch key {
	case "T":
		m.sim.SetTemperature(m.sim.Temperature() + 5)
	case "t":
		if next := m.sim.Temperature() - 5; next > 0 {
			m.sim.SetTemperature(next)
		}
	case "P":
		m.sim.SetPressure(m.sim.Pressure() * 1.05)
	case "p":
		m.sim.SetPressure(m.sim.Pressure() * 0.95)
	case "V":
		m.sim.SetVMR(m.sim.VMR() * 1.1)
	case "v":
		m.sim.SetVMR(m.sim.VMR() / 1.1)
	case "L":
		m.sim.SetLength(m.sim.Length() * 1.1)
	case "l":
		m.sim.SetLength(m.sim.Length() / 1.1)
	case "r":
		// recompute (memoized away when nothing changed)
	default:
		return m, nil
	}

	m.computing = true
	return m, m.compute()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("transpec live: %s (%s)", m.sim.Molecule(), m.sim.BackendName())))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("temperature ") + paramStyle.Render(fmt.Sprintf("%8.1f K     ", m.sim.Temperature())))
	b.WriteString(labelStyle.Render("pressure ") + paramStyle.Render(fmt.Sprintf("%10.0f Pa", m.sim.Pressure())))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("vmr         ") + paramStyle.Render(fmt.Sprintf("%8.3g       ", m.sim.VMR())))
	b.WriteString(labelStyle.Render("length   ") + paramStyle.Render(fmt.Sprintf("%10.2f m", m.sim.Length())))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	case m.computing:
		b.WriteString(statusStyle.Render("computing..."))
		b.WriteString("\n")
	default:
		wavelength, transmission, err := m.sim.Spectrum()
		if err != nil {
			b.WriteString(statusStyle.Render("waiting for first result..."))
			b.WriteString("\n")
		} else {
			width := m.width - 12
			if width < 20 {
				width = 20
			}
			b.WriteString(plot.Terminal(wavelength, transmission, plot.Options{
				Title: m.sim.Title(),
				Width: width,
			}))
			b.WriteString("\n")
			b.WriteString(labelStyle.Render(fmt.Sprintf("%d points in %v", len(wavelength), m.elapsed.Round(time.Millisecond))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("t/T temperature  p/P pressure  v/V vmr  l/L length  r recompute  q quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the explorer and blocks until it quits.
func Run(simulator *sim.Simulator, wlMin, wlMax float64) error {
	p := tea.NewProgram(New(simulator, wlMin, wlMax))
	_, err := p.Run()
	return err
}
