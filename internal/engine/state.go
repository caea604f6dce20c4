package engine

import (
	"sync"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
)

// Defaults applied at startup.
const (
	DefaultPattern = 0
	DefaultDensity = 50
	MaxDensity     = 100
	DensityStep    = 10
)

// Snapshot is a consistent copy of the state.
type Snapshot struct {
	Pattern int
	Density int
	Frame   uint32
	Running bool
}

// State is the shared animation state.
type State struct {
	mu sync.Mutex
	s  Snapshot
}

// NewState returns a state with the given initial pattern and density.
// Values outside their ranges are clamped.
func NewState(pattern, density int) *State {
	if pattern < 0 || pattern >= patterns.Count {
		pattern = DefaultPattern
	}
	if density < 0 {
		density = 0
	}
	if density > MaxDensity {
		density = MaxDensity
	}
	return &State{s: Snapshot{Pattern: pattern, Density: density, Running: true}}
}

// NewDefaultState returns pattern 0, density 50, frame 0, running.
func NewDefaultState() *State {
	return NewState(DefaultPattern, DefaultDensity)
}

func (st *State) Snapshot() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s
}

// Running reports whether the host should keep driving the engine.
func (st *State) Running() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Running
}

func (st *State) Frame() uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Frame
}

// advance increments the frame counter and returns the values to render.
func (st *State) advance() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Frame++
	return st.s
}

// update applies fn under the lock and returns the resulting snapshot.
func (st *State) update(fn func(s *Snapshot)) Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	fn(&st.s)
	return st.s
}
