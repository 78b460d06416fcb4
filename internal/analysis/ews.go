package analysis

import (
	"fmt"

	"github.com/san-kum/tipatlas/internal/logistic"
)

// SignalConfig describes an early-warning-signal run: a trajectory of Length
// states at growth rate R from seed X0, optionally perturbed by Gaussian
// noise, analyzed with a sliding window of Window lag-1 pairs.
type SignalConfig struct {
	R         float64
	X0        float64
	Length    int
	Window    int
	Noise     float64
	NoiseSeed int64
}

func DefaultSignalConfig() SignalConfig {
	return SignalConfig{
		R:         3.8,
		X0:        0.5,
		Length:    200,
		Window:    50,
		Noise:     0.01,
		NoiseSeed: 1,
	}
}

func (c SignalConfig) Validate() error {
	if c.X0 < 0 || c.X0 > 1 {
		return fmt.Errorf("%w: %g", logistic.ErrSeedBounds, c.X0)
	}
	if c.Window < 1 || c.Window >= c.Length {
		return fmt.Errorf("%w: window %d, trajectory %d", logistic.ErrWindowBounds, c.Window, c.Length)
	}
	return nil
}

// Trajectory generates the length-Length orbit for the configuration, noisy
// when Noise > 0 and deterministic otherwise.
func (c SignalConfig) Trajectory() []float64 {
	m := logistic.New(c.R)
	if c.Noise > 0 {
		return m.NoisyOrbit(c.X0, c.Length, c.Noise, c.NoiseSeed)
	}
	return m.Orbit(c.X0, c.Length)
}

// SignalResult holds a trajectory and its early-warning indicators. The
// rolling series share the windowing convention of [AutocorrSeries]: entry i
// is computed from trajectory indices [i, i+Window], so both have length
// Length - Window.
type SignalResult struct {
	Trajectory []float64
	Autocorr   []float64
	Variance   []float64

	// Whole-trajectory indicators, the dashboard's headline metrics.
	AutocorrLag1  float64
	TotalVariance float64
}

// Signal generates the trajectory for cfg and computes its early-warning
// indicators. Like [Sweep] it never fails; validate the configuration first
// if errors are wanted.
func Signal(cfg SignalConfig) *SignalResult {
	traj := cfg.Trajectory()
	return &SignalResult{
		Trajectory:    traj,
		Autocorr:      AutocorrSeries(traj, cfg.Window),
		Variance:      VarianceSeries(traj, cfg.Window),
		AutocorrLag1:  AutocorrLag1(traj),
		TotalVariance: Variance(traj),
	}
}

// AutocorrLag1 returns the lag-1 autocorrelation of the full series: the
// Pearson correlation of xs[t] with xs[t+1]. A series that has collapsed to
// a constant has undefined correlation; 0 is returned as the sentinel.
func AutocorrLag1(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return Pearson(xs[:len(xs)-1], xs[1:])
}

// AutocorrSeries computes the rolling lag-1 autocorrelation of xs.
//
// Window position i covers trajectory indices [i, i+window] and correlates
// the window pairs (xs[i+k], xs[i+k+1]) for k in [0, window); no value past
// i+window is read. The series therefore has length len(xs) - window, and
// every entry lies in [-1, 1] with 0 standing in for zero-variance windows.
func AutocorrSeries(xs []float64, window int) []float64 {
	n := len(xs) - window
	if window < 1 || n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = AutocorrLag1(xs[i : i+window+1])
	}
	return out
}

// VarianceSeries computes the rolling sample variance of xs over the same
// windows as [AutocorrSeries], so the two series align index for index.
func VarianceSeries(xs []float64, window int) []float64 {
	n := len(xs) - window
	if window < 1 || n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = Variance(xs[i : i+window+1])
	}
	return out
}
