package engine

import "github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"

// Options configures a new Engine. Zero values select the defaults.
type Options struct {
	Pattern int
	Density *int
	Source  *patterns.Source
}

// Engine wires the state, controller and dispatcher together.
type Engine struct {
	State      *State
	Controller *Controller
	Dispatcher *Dispatcher
	Library    *patterns.Library
}

func New(opts Options) *Engine {
	density := DefaultDensity
	if opts.Density != nil {
		density = *opts.Density
	}
	st := NewState(opts.Pattern, density)
	lib := patterns.NewLibrary(opts.Source)
	return &Engine{
		State:      st,
		Controller: NewController(st),
		Dispatcher: NewDispatcher(st, lib),
		Library:    lib,
	}
}
