package metrics

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

// Metric accumulates a statistic over rendered frames.
type Metric interface {
	Name() string
	Observe(b *surface.Bitmap, frame uint32)
	Value() float64
	Reset()
}

// Defaults returns the standard metric set recorded for captures.
func Defaults() []Metric {
	return []Metric{
		NewCoverage(),
		NewSymmetry(),
		NewFlicker(),
	}
}

// Values collects the current value of each metric by name.
func Values(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
