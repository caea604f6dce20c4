package metrics

import "github.com/Tyl3rA/digital-kaleidoscope/internal/surface"

// Symmetry is the mean fraction of mirror pairs (x, W-1-x) that agree.
// A value of 1 means every observed frame was exactly left-right symmetric.
type Symmetry struct {
	name    string
	sum     float64
	samples int
}

func NewSymmetry() *Symmetry {
	return &Symmetry{name: "symmetry"}
}

func (s *Symmetry) Name() string { return s.name }

func (s *Symmetry) Observe(b *surface.Bitmap, frame uint32) {
	s.sum += MirrorAgreement(b)
	s.samples++
}

func (s *Symmetry) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return s.sum / float64(s.samples)
}

func (s *Symmetry) Reset() {
	s.sum = 0
	s.samples = 0
}

// MirrorAgreement returns the fraction of horizontal mirror pairs in b that
// are both on or both off.
func MirrorAgreement(b *surface.Bitmap) float64 {
	agree, total := 0, 0
	for y := 0; y < surface.Height; y++ {
		for x := 0; x < surface.Width/2; x++ {
			if b.At(x, y) == b.At(surface.Width-1-x, y) {
				agree++
			}
			total++
		}
	}
	return float64(agree) / float64(total)
}
