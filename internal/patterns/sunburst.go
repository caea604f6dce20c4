package patterns

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

// Sunburst combines angular rays with radial rings, both drifting with the
// frame counter.
type Sunburst struct{}

func NewSunburst() *Sunburst { return &Sunburst{} }

func (s *Sunburst) Name() string { return "sunburst" }

// Rays returns the ray count for a density: 6 at zero, 26 at full.
func Rays(density int) int { return 6 + density/5 }

func (s *Sunburst) Render(dst surface.Surface, frame uint32, density int) {
	dst.Clear()
	w, h := dst.Bounds()
	rays := float32(Rays(density))
	speed := float32(frame) * 0.08
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, theta := polar(x, y)
			rayVal := cosf(theta*rays + speed)
			ringVal := sinf(r*0.25 - speed*0.7)
			if rayVal*ringVal > 0.65 {
				dst.SetPixel(x, y)
			}
		}
	}
}
