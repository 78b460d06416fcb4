package analysis

import (
	"fmt"

	"github.com/san-kum/tipatlas/internal/logistic"
)

// ClusterTol is the tolerance used to merge settled states into levels when
// classifying a regime.
const ClusterTol = 1e-3

// Classify labels the attractor of the logistic map at r: "fixed point",
// "period-N" for cycles, or "chaotic" when the Lyapunov exponent is
// positive. The orbit runs iterations steps from x0 with the last keep
// states examined.
func Classify(r, x0 float64, iterations, keep int) string {
	if keep <= 0 || keep > iterations {
		return "unknown"
	}
	if Lyapunov(r, x0, iterations-keep, keep) > 0 {
		return "chaotic"
	}

	traj := logistic.New(r).Iterate(x0, iterations)
	levels := Clusters(traj[len(traj)-keep:], ClusterTol)

	switch len(levels) {
	case 0:
		return "unknown"
	case 1:
		return "fixed point"
	default:
		return fmt.Sprintf("period-%d", len(levels))
	}
}
