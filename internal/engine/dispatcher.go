package engine

import (
	"sync"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

// Dispatcher advances the frame and renders the selected pattern.
type Dispatcher struct {
	state *State
	lib   *patterns.Library
	mu    sync.Mutex
}

func NewDispatcher(state *State, lib *patterns.Library) *Dispatcher {
	return &Dispatcher{state: state, lib: lib}
}

// Render increments the frame counter and draws one full frame into dst.
// It returns the state the frame was rendered from.
func (d *Dispatcher) Render(dst surface.Surface) Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := d.state.advance()
	d.lib.Pattern(snap.Pattern).Render(dst, snap.Frame, snap.Density)
	return snap
}
