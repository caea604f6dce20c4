package patterns

import (
	"math"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/surface"
)

// Count is the number of selectable patterns.
const Count = 7

// Pattern center.
const (
	cx = surface.Width / 2
	cy = surface.Height / 2
)

// Pattern renders one full frame.
type Pattern interface {
	Name() string
	Render(dst surface.Surface, frame uint32, density int)
}

// Info describes a pattern for menus and listings.
type Info struct {
	Index       int
	Name        string
	Description string
}

// Catalog lists the patterns in selection order.
var Catalog = [Count]Info{
	{0, "star", "rotating spokes"},
	{1, "arcs", "concentric rings drifting outward"},
	{2, "noise", "random dots fading from the center"},
	{3, "mirror", "mirrored random dots"},
	{4, "spiral", "trigonometric swirl"},
	{5, "checker", "scrolling checkered wave"},
	{6, "sunburst", "pulsing rays and rings"},
}

// IndexOf returns the index of the named pattern.
func IndexOf(name string) (int, bool) {
	for _, info := range Catalog {
		if info.Name == name {
			return info.Index, true
		}
	}
	return 0, false
}

// NameOf returns the name for index, or "mirror" for the fallback arm.
func NameOf(index int) string {
	if index < 0 || index >= Count {
		return Catalog[3].Name
	}
	return Catalog[index].Name
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sinf(x float32) float32   { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32   { return float32(math.Cos(float64(x))) }
func sqrtf(x float32) float32  { return float32(math.Sqrt(float64(x))) }
func floorf(x float32) float32 { return float32(math.Floor(float64(x))) }

func atan2f(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// polar returns the radius and angle of (x, y) relative to the center.
func polar(x, y int) (float32, float32) {
	dx := float32(x - cx)
	dy := float32(y - cy)
	return sqrtf(dx*dx + dy*dy), atan2f(dy, dx)
}
