package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/config"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/logutil"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/metrics"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

const historyCapacity = 120

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// RedrawMsg is delivered when the controller requests an immediate frame.
type RedrawMsg struct{}

// Model hosts an engine in a bubbletea program. Every tick renders one frame
// into an offscreen bitmap which is then packed into a braille canvas.
type Model struct {
	eng      *engine.Engine
	keys     config.Keymap
	tick     time.Duration
	theme    Theme
	bitmap   *surface.Bitmap
	canvas   *Canvas
	coverage *metrics.History
	last     engine.Snapshot
	redraws  int
	showHelp bool
	hideSide bool
}

// NewModel builds a live view for eng using the timing, theme and key
// bindings from cfg.
func NewModel(eng *engine.Engine, cfg *config.Config) Model {
	tick := cfg.Tick
	if tick <= 0 {
		tick = config.DefaultTick
	}
	return Model{
		eng:      eng,
		keys:     cfg.Keys.Keymap(),
		tick:     tick,
		theme:    GetTheme(cfg.Theme),
		bitmap:   surface.NewBitmap(),
		canvas:   NewDisplayCanvas(),
		coverage: metrics.NewHistory(historyCapacity),
		last:     eng.State.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return TickMsg(time.Now()) },
		waitRedraw(m.eng.Controller.Redraws()),
	)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func waitRedraw(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return RedrawMsg{}
	}
}

// Update routes key presses through the keymap and renders on ticks and
// redraw requests.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if kind := m.keys.Lookup(key); kind != engine.Ignored {
			m.eng.Controller.Handle(engine.Pressed(kind))
			if !m.eng.State.Running() {
				logutil.Logger().Info("tui stopped", "frame", m.eng.State.Frame())
				return m, tea.Quit
			}
			return m, nil
		}
		switch key {
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			m.theme = NextTheme(m.theme)
		case "s":
			m.hideSide = !m.hideSide
		}
	case TickMsg:
		if !m.eng.State.Running() {
			return m, tea.Quit
		}
		m.renderFrame()
		return m, m.tickCmd()
	case RedrawMsg:
		if !m.eng.State.Running() {
			return m, nil
		}
		m.renderFrame()
		m.redraws++
		return m, waitRedraw(m.eng.Controller.Redraws())
	}
	return m, nil
}

func (m *Model) renderFrame() {
	m.last = m.eng.Dispatcher.Render(m.bitmap)
	m.canvas.Blit(m.bitmap)
	m.coverage.Push(metrics.Fill(m.bitmap) * 100)
}

// View renders the TUI interface.
func (m Model) View() string {
	pixels := lipgloss.NewStyle().
		Foreground(m.theme.On).
		Background(m.theme.Off).
		Render(m.canvas.String())
	canvasView := canvasStyle.Render(pixels)
	if m.hideSide {
		return canvasView
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(GradientText("KALEIDOSCOPE", m.theme.On, m.theme.Accent)) + "\n")

	info := patterns.Catalog[3]
	if m.last.Pattern >= 0 && m.last.Pattern < patterns.Count {
		info = patterns.Catalog[m.last.Pattern]
	}
	s.WriteString(labelStyle.Render("Pattern") + valueStyle.Render(fmt.Sprintf("%s (%d/%d)", info.Name, m.last.Pattern+1, patterns.Count)) + "\n")
	s.WriteString(Subtle.Render(info.Description) + "\n\n")
	s.WriteString(labelStyle.Render("Density") + ProgressBar(float64(m.last.Density)/engine.MaxDensity, 16) + valueStyle.Render(fmt.Sprintf(" %3d", m.last.Density)) + "\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.last.Frame)) + "\n")
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(m.tick.String()) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")

	if vals := m.coverage.Values(); len(vals) > 1 {
		chart := asciigraph.Plot(vals, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Coverage %"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render(Separator(28) + "\n←→:Pattern ↑↓:Density\nT:Theme S:Side ?:Help Q:Quit"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return m.helpView() + "\n\n" + mainView
	}
	return mainView
}

func (m Model) helpView() string {
	rows := []struct {
		kind engine.Kind
		desc string
	}{
		{engine.Next, "Next pattern"},
		{engine.Previous, "Previous pattern"},
		{engine.DensityUp, "Density +10"},
		{engine.DensityDown, "Density -10"},
		{engine.Terminate, "Quit"},
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("KEYBOARD SHORTCUTS") + "\n")
	for _, r := range rows {
		b.WriteString(MetricLabel.Render(r.desc) + "  " + KeyHint.Render(strings.Join(m.keys.Keys(r.kind), " ")) + "\n")
	}
	b.WriteString(MetricLabel.Render("Theme") + "  " + KeyHint.Render("t") + "\n")
	b.WriteString(MetricLabel.Render("Sidebar") + "  " + KeyHint.Render("s") + "\n")
	b.WriteString(MetricLabel.Render("Help") + "  " + KeyHint.Render("?"))
	return GlassPanel.Render(b.String())
}

// Run starts the live view in the alternate screen and blocks until the
// engine stops running.
func Run(eng *engine.Engine, cfg *config.Config) error {
	snap := eng.State.Snapshot()
	logutil.Logger().Info("tui started",
		"pattern", patterns.NameOf(snap.Pattern), "density", snap.Density, "tick", cfg.Tick)
	_, err := tea.NewProgram(NewModel(eng, cfg), tea.WithAltScreen()).Run()
	return err
}
