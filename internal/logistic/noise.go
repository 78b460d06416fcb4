package logistic

import "math/rand"

// NoiseFloor is the smallest standard deviation used once noise is enabled.
// Requesting a tiny positive level still perturbs the orbit measurably.
const NoiseFloor = 1e-4

// NoisyOrbit returns a length-n trajectory starting at x0 with Gaussian
// perturbations of standard deviation max(level, NoiseFloor) added at each
// step. States are clamped back into [0, 1] so the recurrence stays in its
// bounded domain. A non-positive level yields the deterministic Orbit.
//
// The perturbation stream is drawn from a generator seeded with seed, so
// identical inputs always produce identical trajectories.
func (m *Map) NoisyOrbit(x0 float64, n int, level float64, seed int64) []float64 {
	if level <= 0 {
		return m.Orbit(x0, n)
	}
	if n <= 0 {
		return nil
	}
	sigma := level
	if sigma < NoiseFloor {
		sigma = NoiseFloor
	}

	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	xs[0] = clamp01(x0)
	for i := 1; i < n; i++ {
		x := m.Next(xs[i-1]) + rng.NormFloat64()*sigma
		xs[i] = clamp01(x)
	}
	return xs
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
