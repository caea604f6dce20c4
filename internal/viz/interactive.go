package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/config"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	selDescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	itemDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

const (
	stateMenu = iota
	stateLive
)

type menuItem struct {
	label, desc string
	pattern     string
	density     int
}

type picker struct {
	state, cursor int
	items         []menuItem
	cfg           *config.Config
	live          Model
}

// NewPicker lists every pattern at the configured density followed by the
// presets. Choosing an entry starts the live view.
func NewPicker(cfg *config.Config) *picker {
	var items []menuItem
	for _, info := range patterns.Catalog {
		items = append(items, menuItem{
			label:   info.Name,
			desc:    info.Description,
			pattern: info.Name,
			density: cfg.Density,
		})
	}
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		items = append(items, menuItem{
			label:   name,
			desc:    fmt.Sprintf("preset: %s @ %d", p.Pattern, p.Density),
			pattern: p.Pattern,
			density: p.Density,
		})
	}
	return &picker{state: stateMenu, items: items, cfg: cfg}
}

func (m picker) Init() tea.Cmd { return nil }

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m picker) start() (picker, tea.Cmd) {
	item := m.items[m.cursor]
	cfg := *m.cfg
	cfg.Pattern, cfg.Density = item.pattern, item.density
	m.live = NewModel(engine.New(cfg.EngineOptions(nil)), &cfg)
	m.state = stateLive
	return m, m.live.Init()
}

func (m picker) View() string {
	if m.state == stateLive {
		return m.live.View()
	}
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render("KALEIDOSCOPE") + "\n    " + Subtle.Render("procedural pattern display") + "\n    " + Subtle.Render("──────────────────────────") + "\n\n")
	for i, it := range m.items {
		if i == len(patterns.Catalog) {
			b.WriteString("\n")
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursorStyle.Render("▸"), selectedStyle.Render(fmt.Sprintf("%-12s", it.label)), selDescStyle.Render(it.desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", itemStyle.Render(fmt.Sprintf("  %-12s", it.label)), itemDescStyle.Render(it.desc)))
		}
	}
	b.WriteString("\n    " + keyStyle.Render("j/k") + itemStyle.Render(" navigate  ") + keyStyle.Render("enter") + itemStyle.Render(" select  ") + keyStyle.Render("q") + itemStyle.Render(" quit") + "\n")
	return b.String()
}

func RunInteractive(cfg *config.Config) error {
	_, err := tea.NewProgram(NewPicker(cfg), tea.WithAltScreen()).Run()
	return err
}
