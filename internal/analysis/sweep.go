package analysis

import (
	"fmt"
	"sort"

	"github.com/san-kum/tipatlas/internal/logistic"
)

// SweepConfig describes a bifurcation sweep: a linear grid of Steps growth
// rates from RMin to RMax, each iterated Iterations times from X0 with the
// last Keep states retained as the settled sample set.
type SweepConfig struct {
	RMin       float64
	RMax       float64
	Steps      int
	X0         float64
	Iterations int
	Keep       int
}

func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		RMin:       2.5,
		RMax:       4.0,
		Steps:      800,
		X0:         1e-5,
		Iterations: 1000,
		Keep:       100,
	}
}

// Validate reports configuration errors. Keep == 0 is allowed and yields an
// empty point cloud; Keep > Iterations would imply a negative transient.
func (c SweepConfig) Validate() error {
	if c.Steps < 2 || c.RMin >= c.RMax {
		return fmt.Errorf("%w: [%g, %g] with %d steps", logistic.ErrGridBounds, c.RMin, c.RMax, c.Steps)
	}
	if c.X0 < 0 || c.X0 > 1 {
		return fmt.Errorf("%w: %g", logistic.ErrSeedBounds, c.X0)
	}
	if c.Keep < 0 || c.Keep > c.Iterations {
		return fmt.Errorf("%w: keep %d of %d iterations", logistic.ErrTransientBounds, c.Keep, c.Iterations)
	}
	return nil
}

// Transient returns the number of discarded leading iterates.
func (c SweepConfig) Transient() int {
	return c.Iterations - c.Keep
}

// Grid returns the strictly increasing parameter grid of length Steps.
func (c SweepConfig) Grid() []float64 {
	if c.Steps < 2 {
		return nil
	}
	grid := make([]float64, c.Steps)
	step := (c.RMax - c.RMin) / float64(c.Steps-1)
	for i := range grid {
		grid[i] = c.RMin + float64(i)*step
	}
	return grid
}

// SweepResult holds the bifurcation point cloud as two parallel slices:
// R[i] is the growth rate that produced settled state X[i]. Points are
// ordered by parameter, with Keep consecutive entries per grid value.
type SweepResult struct {
	R []float64
	X []float64
}

// Len returns the number of points in the cloud.
func (r *SweepResult) Len() int {
	return len(r.R)
}

// Sweep computes the bifurcation point cloud for cfg. Each grid value is
// independent, so the grid is split across worker goroutines; every worker
// writes into its own block of the preallocated output, keeping the result
// deterministic and ordered by parameter.
//
// Sweep never fails: degenerate configurations produce degenerate (possibly
// empty) clouds. Use [SweepConfig.Validate] to reject them up front.
func Sweep(cfg SweepConfig) *SweepResult {
	grid := cfg.Grid()
	keep := cfg.Keep
	if len(grid) == 0 || keep <= 0 || keep > cfg.Iterations {
		return &SweepResult{}
	}

	res := &SweepResult{
		R: make([]float64, len(grid)*keep),
		X: make([]float64, len(grid)*keep),
	}

	parallelFor(len(grid), 16, func(start, end int) {
		for i := start; i < end; i++ {
			m := logistic.New(grid[i])
			traj := m.Iterate(cfg.X0, cfg.Iterations)
			settled := traj[len(traj)-keep:]

			base := i * keep
			for j, v := range settled {
				res.R[base+j] = grid[i]
				res.X[base+j] = v
			}
		}
	})

	return res
}

// Clusters reduces a settled sample set to its distinct levels within tol,
// returned in increasing order. A period-k orbit yields k levels; chaotic
// samples yield many.
func Clusters(values []float64, tol float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	levels := []float64{sorted[0]}
	for _, v := range sorted[1:] {
		if v-levels[len(levels)-1] > tol {
			levels = append(levels, v)
		}
	}
	return levels
}
