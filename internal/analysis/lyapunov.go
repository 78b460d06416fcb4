package analysis

import (
	"math"

	"github.com/san-kum/tipatlas/internal/logistic"
)

// Lyapunov estimates the largest Lyapunov exponent of the logistic map at r
// as the orbit average of ln|f'(x)| = ln|r(1-2x)|, after discarding a
// transient. A positive value indicates chaos; at r=4 the exact value is
// ln 2.
func Lyapunov(r, x0 float64, transient, samples int) float64 {
	if samples <= 0 {
		return 0
	}

	m := logistic.New(r)
	x := x0
	for i := 0; i < transient; i++ {
		x = m.Next(x)
	}

	sum := 0.0
	count := 0
	for i := 0; i < samples; i++ {
		d := math.Abs(m.Deriv(x))
		if d > 0 {
			sum += math.Log(d)
			count++
		}
		x = m.Next(x)
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
