package analysis

import "math"

type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes population statistics of data.
func Summarize(data []float64) Summary {
	s := Summary{N: len(data)}
	if s.N == 0 {
		return s
	}
	s.Min, s.Max = data[0], data[0]
	sum := 0.0
	for _, v := range data {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(s.N)
	ss := 0.0
	for _, v := range data {
		d := v - s.Mean
		ss += d * d
	}
	s.StdDev = math.Sqrt(ss / float64(s.N))
	return s
}
