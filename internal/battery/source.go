package battery

import "math/rand"

// CurrentSource supplies one instantaneous current reading per tick.
// The uniform random source is a stand-in for real telemetry; any
// implementation delivering amps per sample is substitutable.
type CurrentSource interface {
	Next() float64
}

// UniformSource draws uniformly from [MinA, MaxA].
type UniformSource struct {
	MinA float64
	MaxA float64
	rand *rand.Rand
}

// NewUniformSource creates a seeded uniform current source.
func NewUniformSource(minA, maxA float64, seed int64) *UniformSource {
	return &UniformSource{MinA: minA, MaxA: maxA, rand: rand.New(rand.NewSource(seed))}
}

func (s *UniformSource) Next() float64 {
	if s.MaxA <= s.MinA {
		return s.MinA
	}
	return s.MinA + s.rand.Float64()*(s.MaxA-s.MinA)
}

// FixedSource always returns the same current.
type FixedSource float64

func (s FixedSource) Next() float64 { return float64(s) }

// SequenceSource replays a fixed series of readings, repeating the last
// value once exhausted. Used by tests to make runs deterministic.
type SequenceSource struct {
	Values []float64
	idx    int
}

func (s *SequenceSource) Next() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	if s.idx >= len(s.Values) {
		return s.Values[len(s.Values)-1]
	}
	v := s.Values[s.idx]
	s.idx++
	return v
}
