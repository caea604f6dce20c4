package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is an input category.
type Kind int

const (
	Ignored Kind = iota
	Terminate
	Next
	Previous
	DensityUp
	DensityDown
)

var kindNames = map[Kind]string{
	Ignored:     "ignored",
	Terminate:   "terminate",
	Next:        "next",
	Previous:    "previous",
	DensityUp:   "density-up",
	DensityDown: "density-down",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("engine: unknown event kind")

// ParseKind maps a name such as "next" or "density-up" to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Ignored, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Action describes how a key was actuated. Only Press is acted upon.
type Action int

const (
	Press Action = iota
	Release
	Repeat
	Long
)

var actionNames = map[Action]string{
	Press:   "press",
	Release: "release",
	Repeat:  "repeat",
	Long:    "long",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction maps "press", "release", "repeat" or "long" to its Action.
// The empty string is Press.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Press, nil
	}
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return Press, fmt.Errorf("engine: unknown action %q", name)
}

// Event is a discrete input delivered by a host.
type Event struct {
	Kind   Kind
	Action Action
}

// Pressed is shorthand for a Press event of kind k.
func Pressed(k Kind) Event { return Event{Kind: k, Action: Press} }
