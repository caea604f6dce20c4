package config

import (
	"sort"
	"strings"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
)

// KeyConfig lists key names per input category. Names follow the terminal
// convention: "left", "esc", "ctrl+c", single characters.
type KeyConfig struct {
	Terminate   []string `yaml:"terminate"`
	Next        []string `yaml:"next"`
	Previous    []string `yaml:"previous"`
	DensityUp   []string `yaml:"density_up"`
	DensityDown []string `yaml:"density_down"`
}

func DefaultKeys() KeyConfig {
	return KeyConfig{
		Terminate:   []string{"esc", "q", "ctrl+c", "backspace"},
		Next:        []string{"right", "l"},
		Previous:    []string{"left", "h"},
		DensityUp:   []string{"up", "k", "+"},
		DensityDown: []string{"down", "j", "-"},
	}
}

// Keymap resolves key names to event kinds.
type Keymap map[string]engine.Kind

// Keymap builds the lookup table. Later categories win on duplicates.
func (k KeyConfig) Keymap() Keymap {
	m := make(Keymap)
	add := func(names []string, kind engine.Kind) {
		for _, n := range names {
			m[strings.ToLower(n)] = kind
		}
	}
	add(k.Terminate, engine.Terminate)
	add(k.Next, engine.Next)
	add(k.Previous, engine.Previous)
	add(k.DensityUp, engine.DensityUp)
	add(k.DensityDown, engine.DensityDown)
	return m
}

// Lookup returns the kind bound to key, or engine.Ignored.
func (m Keymap) Lookup(key string) engine.Kind {
	if kind, ok := m[strings.ToLower(key)]; ok {
		return kind
	}
	return engine.Ignored
}

// Keys returns the sorted key names bound to kind.
func (m Keymap) Keys(kind engine.Kind) []string {
	var keys []string
	for k, v := range m {
		if v == kind {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
