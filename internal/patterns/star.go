package patterns

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

const piApprox float32 = 3.14159

// Star draws rotating spokes with perpendicular arms, mirrored horizontally.
type Star struct{}

func NewStar() *Star { return &Star{} }

func (s *Star) Name() string { return "star" }

// Spokes returns the spoke count for a density.
func Spokes(density int) int {
	return clampInt(density/10+2, 2, 16)
}

func (s *Star) Render(dst surface.Surface, frame uint32, density int) {
	dst.Clear()
	spokes := Spokes(density)
	base := float32(frame) * 0.05
	angleStep := piApprox / float32(spokes)
	for i := 0; i < spokes; i++ {
		angle := base + float32(i)*angleStep
		ray(dst, angle, surface.Width/2)
		ray(dst, angle+piApprox/2, surface.Height/2)
	}
}

// ray plots a ray from the center along angle and its horizontal mirror.
func ray(dst surface.Surface, angle float32, length int) {
	c, s := cosf(angle), sinf(angle)
	for l := 0; l < length; l++ {
		xOff := int(c * float32(l))
		yOff := int(s * float32(l))
		dst.SetPixel(cx+xOff, cy+yOff)
		dst.SetPixel(cx-xOff, cy+yOff)
	}
}
