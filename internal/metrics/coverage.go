package metrics

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

// Coverage is the mean fraction of lit pixels per frame.
type Coverage struct {
	name    string
	sum     float64
	last    float64
	samples int
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(b *surface.Bitmap, frame uint32) {
	c.last = Fill(b)
	c.sum += c.last
	c.samples++
}

func (c *Coverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

// Last returns the fill of the most recent frame.
func (c *Coverage) Last() float64 { return c.last }

func (c *Coverage) Reset() {
	c.sum = 0
	c.last = 0
	c.samples = 0
}

// Fill returns the lit fraction of b in [0,1].
func Fill(b *surface.Bitmap) float64 {
	return float64(b.Count()) / float64(surface.Width*surface.Height)
}
