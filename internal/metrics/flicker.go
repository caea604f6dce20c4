package metrics

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

// Flicker is the mean fraction of pixels that change between consecutive
// frames.
type Flicker struct {
	name    string
	prev    *surface.Bitmap
	sum     float64
	samples int
}

func NewFlicker() *Flicker {
	return &Flicker{name: "flicker"}
}

func (f *Flicker) Name() string { return f.name }

func (f *Flicker) Observe(b *surface.Bitmap, frame uint32) {
	if f.prev == nil {
		f.prev = b.Clone()
		return
	}
	changed := 0
	for y := 0; y < surface.Height; y++ {
		for x := 0; x < surface.Width; x++ {
			if b.At(x, y) != f.prev.At(x, y) {
				changed++
			}
		}
	}
	f.sum += float64(changed) / float64(surface.Width*surface.Height)
	f.samples++
	f.prev.CopyFrom(b)
}

func (f *Flicker) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.sum / float64(f.samples)
}

func (f *Flicker) Reset() {
	f.prev = nil
	f.sum = 0
	f.samples = 0
}
