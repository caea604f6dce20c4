package patterns

import (
	"math/rand/v2"
	"time"
)

// Clock returns a millisecond tick used to rekey the generator.
type Clock func() uint32

// Source owns the random generators used by the stochastic patterns.
//
// Stream is seeded once and never reseeded. Rekey reseeds a second generator
// from the clock XOR frame on every call. A Source is not safe for
// concurrent use; the dispatcher serializes renders.
type Source struct {
	stream  *rand.Rand
	pcg     *rand.PCG
	rekeyed *rand.Rand
	clock   Clock
}

// NewSource creates a Source with an explicit stream seed and clock.
func NewSource(seed uint64, clock Clock) *Source {
	if clock == nil {
		clock = func() uint32 { return 0 }
	}
	pcg := rand.NewPCG(0, 0)
	return &Source{
		stream:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		pcg:     pcg,
		rekeyed: rand.New(pcg),
		clock:   clock,
	}
}

// NewClockSource seeds the stream from the wall clock and rekeys from
// milliseconds elapsed since creation.
func NewClockSource() *Source {
	start := time.Now()
	return NewSource(uint64(start.UnixNano()), func() uint32 {
		return uint32(time.Since(start).Milliseconds())
	})
}

// Stream returns the persistent generator.
func (s *Source) Stream() *rand.Rand { return s.stream }

// Rekey reseeds the per-frame generator and returns it.
func (s *Source) Rekey(frame uint32) *rand.Rand {
	s.pcg.Seed(uint64(s.clock()^frame), 0)
	return s.rekeyed
}
