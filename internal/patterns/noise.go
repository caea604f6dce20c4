package patterns

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

// Noise draws random dots whose probability falls off with Manhattan
// distance from the center.
type Noise struct {
	src *Source
}

func NewNoise(src *Source) *Noise { return &Noise{src: src} }

func (n *Noise) Name() string { return "noise" }

// LocalThreshold is the percent chance of lighting (x, y). It equals density
// at the center and reaches zero at the far corner.
func LocalThreshold(x, y, density int) int {
	maxDist := cx + cy
	dist := absInt(x-cx) + absInt(y-cy)
	t := density - dist*density/maxDist
	if t < 0 {
		return 0
	}
	return t
}

func (n *Noise) Render(dst surface.Surface, frame uint32, density int) {
	dst.Clear()
	w, h := dst.Bounds()
	rng := n.src.Rekey(frame)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if rng.IntN(100) < LocalThreshold(x, y, density) {
				dst.SetPixel(x, y)
			}
		}
	}
}
