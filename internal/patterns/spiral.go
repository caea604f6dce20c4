package patterns

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

// Spiral lights pixels where a phase-shifted polar sine wave peaks.
type Spiral struct{}

func NewSpiral() *Spiral { return &Spiral{} }

func (s *Spiral) Name() string { return "spiral" }

func (s *Spiral) Render(dst surface.Surface, frame uint32, density int) {
	dst.Clear()
	w, h := dst.Bounds()
	phase := float32(frame) * 0.1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, theta := polar(x, y)
			if sinf(r*0.3+theta*6.0-phase) > 0.8 {
				dst.SetPixel(x, y)
			}
		}
	}
}
