package analysis

import "math"

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}

// Variance returns the sample variance (n-1 denominator), or 0 when fewer
// than two values are supplied.
func Variance(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	mu := Mean(xs)
	sum := 0.0
	for _, v := range xs {
		d := v - mu
		sum += d * d
	}
	return sum / float64(n-1)
}

// Pearson returns the correlation coefficient of the paired slices. Pairs
// beyond the shorter slice are ignored. When either side has zero variance
// the correlation is undefined; 0 is returned as the sentinel. The result is
// clamped to [-1, 1] against floating-point drift.
func Pearson(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < 2 {
		return 0
	}

	muA := Mean(a[:n])
	muB := Mean(b[:n])

	var cov, varA, varB float64
	for i := 0; i < n; i++ {
		da := a[i] - muA
		db := b[i] - muB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0
	}

	r := cov / math.Sqrt(varA*varB)
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
