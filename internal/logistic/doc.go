// Package logistic implements the logistic map, the one-dimensional
// recurrence x_{n+1} = r * x_n * (1 - x_n).
//
// A [Map] holds the growth-rate parameter r and produces orbits from a seed
// state:
//
//	m := logistic.New(3.8)
//	orbit := m.Orbit(0.5, 200)
//
// For r in [0, 4] and seeds in [0, 1] every iterate stays in [0, 1]. Values
// outside that domain are not guarded; orbits are simply allowed to diverge,
// matching the mathematical definition of the map.
//
// [Map.NoisyOrbit] adds seeded Gaussian perturbations and clamps states back
// into [0, 1], which is the form used for early-warning-signal analysis.
package logistic
