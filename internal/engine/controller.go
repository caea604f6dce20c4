package engine

import (
	"github.com/Tyl3rA/digital-kaleidoscope/internal/logutil"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
)

// Controller applies input events to a State.
type Controller struct {
	state  *State
	redraw chan struct{}
}

func NewController(state *State) *Controller {
	return &Controller{
		state:  state,
		redraw: make(chan struct{}, 1),
	}
}

// Redraws delivers coalesced out-of-band redraw requests.
func (c *Controller) Redraws() <-chan struct{} { return c.redraw }

// Handle applies ev and reports whether an immediate redraw is requested.
// Non-press actions, unknown kinds and every event after termination are
// ignored.
func (c *Controller) Handle(ev Event) bool {
	if ev.Action != Press {
		return false
	}

	redraw, terminated := false, false
	snap := c.state.update(func(s *Snapshot) {
		if !s.Running {
			return
		}
		switch ev.Kind {
		case Terminate:
			s.Running = false
			terminated = true
		case Next:
			s.Pattern = (s.Pattern + 1) % patterns.Count
			redraw = true
		case Previous:
			s.Pattern = (s.Pattern - 1 + patterns.Count) % patterns.Count
			redraw = true
		case DensityUp:
			s.Density += DensityStep
			if s.Density > MaxDensity {
				s.Density = MaxDensity
			}
			redraw = true
		case DensityDown:
			if s.Density < DensityStep {
				s.Density = 0
			} else {
				s.Density -= DensityStep
			}
			redraw = true
		}
	})

	log := logutil.Logger()
	if terminated {
		log.Info("terminate requested", "frame", snap.Frame)
	}
	if redraw {
		log.Debug("state changed", "event", ev.Kind.String(),
			"pattern", patterns.NameOf(snap.Pattern), "density", snap.Density)
		select {
		case c.redraw <- struct{}{}:
		default:
		}
	}
	return redraw
}
