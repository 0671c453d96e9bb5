package projection

import "math/rand/v2"

// RandomSource supplies the per-step perturbation draw. Implementations must
// be safe for concurrent use; the engine takes one draw per trajectory step.
type RandomSource interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// defaultSource draws from the math/rand/v2 global generator, which is
// auto-seeded and safe for concurrent use.
type defaultSource struct{}

func (defaultSource) Float64() float64 {
	return rand.Float64()
}

// DefaultSource returns the process-wide random source used when no explicit
// source is injected.
func DefaultSource() RandomSource {
	return defaultSource{}
}
