package patterns

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

// Mirror draws random dots on the left half and copies each to the right.
type Mirror struct {
	src *Source
}

func NewMirror(src *Source) *Mirror { return &Mirror{src: src} }

func (m *Mirror) Name() string { return "mirror" }

// Render lights each left-half pixel with probability density/100. The same
// draw decides the mirrored pixel, so both halves always match.
func (m *Mirror) Render(dst surface.Surface, frame uint32, density int) {
	dst.Clear()
	w, h := dst.Bounds()
	rng := m.src.Stream()
	for x := 0; x < w/2; x++ {
		for y := 0; y < h; y++ {
			if rng.IntN(100) < density {
				dst.SetPixel(x, y)
				dst.SetPixel(w-1-x, y)
			}
		}
	}
}
