package patterns

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

// Checker draws a wave masked to the odd squares of a scrolling checkerboard.
type Checker struct{}

func NewChecker() *Checker { return &Checker{} }

func (c *Checker) Name() string { return "checker" }

func (c *Checker) Render(dst surface.Surface, frame uint32, density int) {
	dst.Clear()
	w, h := dst.Bounds()
	shift := float32(frame) * 0.05
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx := float32(x)*0.1 + shift
			ny := float32(y) * 0.1
			if (int(floorf(nx))+int(floorf(ny)))&1 == 0 {
				continue
			}
			if sinf(nx*1.5)*cosf(ny*1.5) > 0.3 {
				dst.SetPixel(x, y)
			}
		}
	}
}
