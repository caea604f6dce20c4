package patterns

// Library maps pattern indices to implementations.
type Library struct {
	patterns [Count]Pattern
	fallback Pattern
	src      *Source
}

// NewLibrary builds the seven patterns around a shared random source.
func NewLibrary(src *Source) *Library {
	if src == nil {
		src = NewClockSource()
	}
	mirror := NewMirror(src)
	return &Library{
		patterns: [Count]Pattern{
			NewStar(),
			NewArcs(),
			NewNoise(src),
			mirror,
			NewSpiral(),
			NewChecker(),
			NewSunburst(),
		},
		fallback: mirror,
		src:      src,
	}
}

// Pattern returns the pattern for index. Indices outside [0, Count) select
// the mirrored-dots fallback.
func (l *Library) Pattern(index int) Pattern {
	if index < 0 || index >= Count {
		return l.fallback
	}
	return l.patterns[index]
}

// Source returns the library's random source.
func (l *Library) Source() *Source { return l.src }
