package logistic

import "fmt"

// Map is the logistic recurrence with growth-rate parameter r.
type Map struct {
	R float64
}

func New(r float64) *Map {
	return &Map{R: r}
}

// Next applies one step of the recurrence.
func (m *Map) Next(x float64) float64 {
	return m.R * x * (1 - x)
}

// Deriv returns the derivative of the map at x, r*(1-2x).
func (m *Map) Deriv(x float64) float64 {
	return m.R * (1 - 2*x)
}

// Iterate returns the n states following x0. The seed is not included.
func (m *Map) Iterate(x0 float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	x := x0
	for i := 0; i < n; i++ {
		x = m.Next(x)
		xs[i] = x
	}
	return xs
}

// Orbit returns a length-n trajectory starting at x0, so the seed occupies
// index 0 and n-1 steps of the map follow it.
func (m *Map) Orbit(x0 float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	xs[0] = x0
	for i := 1; i < n; i++ {
		xs[i] = m.Next(xs[i-1])
	}
	return xs
}

// FixedPoint returns the nontrivial fixed point (r-1)/r, which attracts
// orbits for r in (1, 3). For r <= 1 the only attractor is 0.
func (m *Map) FixedPoint() float64 {
	if m.R <= 1 {
		return 0
	}
	return (m.R - 1) / m.R
}

func (m *Map) GetParams() map[string]float64 {
	return map[string]float64{"r": m.R}
}

func (m *Map) SetParam(name string, v float64) error {
	switch name {
	case "r":
		m.R = v
		return nil
	}
	return fmt.Errorf("logistic: unknown parameter %q", name)
}
