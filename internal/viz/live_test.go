package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/config"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
)

func newTestModel() Model {
	src := patterns.NewSource(1, func() uint32 { return 7 })
	eng := engine.New(engine.Options{Source: src})
	return NewModel(eng, config.DefaultConfig())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelTickRendersFrame(t *testing.T) {
	m := newTestModel()
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.last.Frame != 1 {
		t.Errorf("frame = %d, want 1", m.last.Frame)
	}
	if m.coverage.Len() != 1 {
		t.Errorf("coverage samples = %d, want 1", m.coverage.Len())
	}
	if m.bitmap.Count() == 0 {
		t.Error("star pattern rendered nothing")
	}
}

func TestModelKeysDriveController(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.eng.State.Snapshot().Pattern; got != 1 {
		t.Errorf("pattern = %d, want 1", got)
	}
	select {
	case <-m.eng.Controller.Redraws():
	default:
		t.Error("pattern change should request a redraw")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.eng.State.Snapshot().Density; got != 40 {
		t.Errorf("density = %d, want 40", got)
	}
}

func TestModelRedrawRendersImmediately(t *testing.T) {
	m := newTestModel()
	m, cmd := update(t, m, RedrawMsg{})
	if cmd == nil {
		t.Fatal("redraw should re-arm the listener")
	}
	if m.last.Frame != 1 || m.redraws != 1 {
		t.Errorf("frame = %d redraws = %d, want 1 and 1", m.last.Frame, m.redraws)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.eng.State.Running() {
		t.Error("engine still running after quit key")
	}

	frame := m.eng.State.Frame()
	if _, cmd = update(t, m, TickMsg(time.Now())); cmd == nil {
		t.Fatal("tick after stop should quit")
	}
	if m.eng.State.Frame() != frame {
		t.Error("tick after stop rendered a frame")
	}
}

func TestModelViewOnlyKeys(t *testing.T) {
	m := newTestModel()
	before := m.theme.Name
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.theme.Name == before {
		t.Error("t should cycle the theme")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.showHelp {
		t.Error("? should toggle help")
	}
	if got := m.eng.State.Snapshot(); got.Pattern != 0 || got.Density != 50 {
		t.Errorf("view keys changed engine state: %+v", got)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	for _, want := range []string{"arcs", "Density", "Frame"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m.hideSide = true
	if strings.Contains(m.View(), "Density") {
		t.Error("sidebar shown while hidden")
	}
}

func TestPickerStartsLiveView(t *testing.T) {
	p := NewPicker(config.DefaultConfig())
	if len(p.items) != patterns.Count+len(config.Presets) {
		t.Fatalf("items = %d", len(p.items))
	}
	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pk := next.(picker)
	if pk.state != stateLive || cmd == nil {
		t.Fatal("enter should start the live view")
	}
	if got := pk.live.eng.State.Snapshot().Pattern; got != 1 {
		t.Errorf("pattern = %d, want 1 (arcs)", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "phosphor" {
		t.Error("unknown theme should fall back to phosphor")
	}
	if NextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("NextTheme should wrap")
	}
	on, off := ThemeAmber.Pixels()
	if on.R != 0xff || on.G != 0xb0 || on.B != 0 || off.A != 0xff {
		t.Errorf("amber pixels = %v %v", on, off)
	}
}
