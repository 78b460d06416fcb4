package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tipatlas/internal/analysis"
	"github.com/san-kum/tipatlas/internal/config"
	"github.com/san-kum/tipatlas/internal/export"
	"github.com/san-kum/tipatlas/internal/storage"
	"github.com/san-kum/tipatlas/internal/viz"
)

const (
	minCanvasWidth = 40
	maxCanvasWidth = 110
	canvasHeight   = 18
)

// Orbit lengths for the Lyapunov and regime readouts. These are estimator
// settings, not display parameters, so they stay fixed while the sweep's
// iteration and keep counts are tuned.
const (
	lyapTransient    = 500
	lyapSamples      = 2000
	regimeIterations = 1000
	regimeKeep       = 100
)

// Tunable dashboard parameters, in display order.
var paramNames = []string{"r", "noise", "window", "length", "steps", "iterations", "keep"}

// Model is the dashboard state: the two configurations, their latest
// results, and UI context. Every parameter change re-runs the pure
// computations and replaces the cached results.
type Model struct {
	sweepCfg analysis.SweepConfig
	sigCfg   analysis.SignalConfig

	sweep  *analysis.SweepResult
	signal *analysis.SignalResult
	lyap   float64
	regime string

	store         *storage.Store
	width, height int
	selected      int
	editing       bool
	editBuf       string
	status        string
}

// NewModel builds a dashboard from a configuration and computes the initial
// results.
func NewModel(cfg *config.Config, store *storage.Store) Model {
	m := Model{
		sweepCfg: cfg.SweepConfig(),
		sigCfg:   cfg.SignalConfig(),
		store:    store,
		width:    100,
		height:   30,
	}
	m.recompute()
	return m
}

// Run launches the dashboard.
func Run(cfg *config.Config, store *storage.Store) error {
	p := tea.NewProgram(NewModel(cfg, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				m.setParam(paramNames[m.selected], val)
				m.recompute()
			}
			m.editing, m.editBuf = false, ""
		case "escape":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(paramNames)-1 {
			m.selected++
		}
	case "left", "h":
		name := paramNames[m.selected]
		m.setParam(name, m.paramValue(name)-m.paramStep(name))
		m.recompute()
	case "right", "l":
		name := paramNames[m.selected]
		m.setParam(name, m.paramValue(name)+m.paramStep(name))
		m.recompute()
	case "enter":
		m.editing = true
		m.editBuf = fmt.Sprintf("%g", m.paramValue(paramNames[m.selected]))
	case "s":
		m.saveRuns()
	case "e":
		m.exportSVG()
	}
	return m, nil
}

func (m *Model) paramValue(name string) float64 {
	switch name {
	case "r":
		return m.sigCfg.R
	case "noise":
		return m.sigCfg.Noise
	case "window":
		return float64(m.sigCfg.Window)
	case "length":
		return float64(m.sigCfg.Length)
	case "steps":
		return float64(m.sweepCfg.Steps)
	case "iterations":
		return float64(m.sweepCfg.Iterations)
	case "keep":
		return float64(m.sweepCfg.Keep)
	}
	return 0
}

func (m *Model) paramStep(name string) float64 {
	switch name {
	case "r":
		return 0.01
	case "noise":
		return 0.005
	case "window":
		return 5
	case "length":
		return 50
	case "steps":
		return 50
	case "iterations":
		return 100
	case "keep":
		return 10
	}
	return 1
}

func (m *Model) setParam(name string, v float64) {
	switch name {
	case "r":
		m.sigCfg.R = clampF(v, 0, 4)
	case "noise":
		m.sigCfg.Noise = clampF(v, 0, 0.2)
	case "window":
		m.sigCfg.Window = clampI(int(v), 2, m.sigCfg.Length-1)
	case "length":
		m.sigCfg.Length = clampI(int(v), m.sigCfg.Window+1, 100000)
	case "steps":
		m.sweepCfg.Steps = clampI(int(v), 2, 10000)
	case "iterations":
		m.sweepCfg.Iterations = clampI(int(v), m.sweepCfg.Keep, 100000)
	case "keep":
		m.sweepCfg.Keep = clampI(int(v), 0, m.sweepCfg.Iterations)
	}
}

func (m *Model) recompute() {
	m.sweep = analysis.Sweep(m.sweepCfg)
	m.signal = analysis.Signal(m.sigCfg)

	m.lyap = analysis.Lyapunov(m.sigCfg.R, m.sigCfg.X0, lyapTransient, lyapSamples)
	m.regime = analysis.Classify(m.sigCfg.R, m.sigCfg.X0, regimeIterations, regimeKeep)
}

func (m *Model) saveRuns() {
	if m.store == nil {
		m.status = "no data directory configured"
		return
	}
	if err := m.store.Init(); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	sweepID, err := m.store.SaveSweep(m.sweepCfg, m.sweep)
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	signalID, err := m.store.SaveSignal(m.sigCfg, m.signal)
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("saved %s, %s", sweepID, signalID)
}

func (m *Model) exportSVG() {
	path := fmt.Sprintf("bifurcation_%d.svg", time.Now().Unix())
	svg := export.BifurcationSVG(m.sweep, m.sweepCfg, 1200, 700, m.sigCfg.R)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.status = "exported " + path
}

func (m Model) View() string {
	canvasW := m.width - 52
	if canvasW < minCanvasWidth {
		canvasW = minCanvasWidth
	}
	if canvasW > maxCanvasWidth {
		canvasW = maxCanvasWidth
	}

	diagram := viz.RenderBifurcation(m.sweep, m.sweepCfg, canvasW, canvasHeight, m.sigCfg.R)
	canvasView := viz.PanelStyle.Render(viz.HeaderStyle.Render("BIFURCATION DIAGRAM") + "\n" + diagram)

	statsView := viz.PanelStyle.Render(m.viewStats())

	out := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.status != "" {
		out += "\n" + viz.Subtle.Render(m.status)
	}
	return out
}

func (m Model) viewStats() string {
	var s strings.Builder
	s.WriteString(viz.HeaderStyle.Render(fmt.Sprintf("SIGNAL @ r = %.3f", m.sigCfg.R)) + "\n\n")

	if len(m.signal.Trajectory) > 1 {
		chart := asciigraph.Plot(m.signal.Trajectory,
			asciigraph.Height(6),
			asciigraph.Width(38),
			asciigraph.Caption("trajectory"),
		)
		s.WriteString(chart + "\n\n")
	}

	if len(m.signal.Autocorr) > 0 {
		s.WriteString(viz.Subtle.Render("lag-1 autocorr ") + viz.Sparkline(m.signal.Autocorr, 30) + "\n\n")
	}

	ac := m.signal.AutocorrLag1
	acStyle := viz.AutocorrStyle(ac)
	s.WriteString(viz.LabelStyle.Render("autocorr") + acStyle.Render(fmt.Sprintf("%.2f", ac)))
	s.WriteString("  " + acStyle.Render(viz.MeterBar(ac, 12)) + "\n")
	s.WriteString(viz.FormatMetric("variance", m.signal.TotalVariance) + "\n")
	s.WriteString(viz.FormatMetric("lyapunov", m.lyap) + "\n")
	s.WriteString(viz.LabelStyle.Render("regime") + viz.ValueStyle.Render(m.regime) + "\n")

	s.WriteString("\nPARAMETERS\n")
	for i, name := range paramNames {
		val := fmt.Sprintf("%8.3f", m.paramValue(name))
		if m.editing && i == m.selected {
			val = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		line := fmt.Sprintf("%-11s %s", name, val)
		if i == m.selected {
			s.WriteString(viz.ActiveParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + viz.LabelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(viz.HelpStyle.Render("\nj/k select  h/l adjust  enter edit\ns save  e export svg  q quit"))
	return s.String()
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
