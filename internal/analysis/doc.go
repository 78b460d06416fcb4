// Package analysis computes bifurcation diagrams and early-warning signals
// for the logistic map.
//
// The two main entry points are pure functions of their configuration:
//
//   - [Sweep]: parameter sweep producing the bifurcation point cloud
//   - [Signal]: noisy trajectory with rolling lag-1 autocorrelation and
//     variance, the classic indicators of critical slowing down
//
// Supporting estimators characterize the dynamics at a single parameter:
//
//   - [Lyapunov]: largest Lyapunov exponent via the orbit average of ln|f'(x)|
//   - [Clusters]: distinct settled levels of an orbit within tolerance
//   - [Classify]: regime label (fixed point, period-2, ..., chaotic)
//   - [PowerSpectrum]: FFT magnitude spectrum of an orbit
//
// # Chaos Detection
//
// A positive Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.Lyapunov(3.99, 0.5, 500, 5000)
//	if lambda > 0 {
//	    // orbit is chaotic
//	}
package analysis
