package patterns

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

// Arcs draws concentric ring fragments that move out one pixel per frame.
type Arcs struct{}

func NewArcs() *Arcs { return &Arcs{} }

func (a *Arcs) Name() string { return "arcs" }

// RingStep returns the ring spacing for a density.
func RingStep(density int) int {
	return clampInt(density/10+2, 2, 10)
}

func (a *Arcs) Render(dst surface.Surface, frame uint32, density int) {
	dst.Clear()
	step := RingStep(density)
	offset := int(frame % uint32(step))
	for r := offset; r < cy; r += step {
		for dy := -r; dy <= r; dy++ {
			inside := r*r - dy*dy
			if inside < 0 {
				continue
			}
			// round half up
			dx := int(sqrtf(float32(inside)) + 0.5)
			dst.SetPixel(cx-dx, cy+dy)
			dst.SetPixel(cx+dx, cy+dy)
		}
	}
}
