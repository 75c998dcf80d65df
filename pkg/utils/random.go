package utils

import "math/rand"

// RandomSource supplies the uniform pick used on selection ties. Injected so
// tests can substitute a deterministic source.
type RandomSource interface {
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
}

type seededSource struct {
	rng *rand.Rand
}

func NewSeededSource(seed int64) RandomSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Intn(n int) int {
	return s.rng.Intn(n)
}
