package analysis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tipatlas/internal/analysis"
	"github.com/san-kum/tipatlas/internal/logistic"
)

var _ = Describe("Sweep", func() {
	It("produces keep points per grid value, ordered by parameter", func() {
		cfg := analysis.SweepConfig{RMin: 3.0, RMax: 3.8, Steps: 5, X0: 0.5, Iterations: 300, Keep: 20}
		res := analysis.Sweep(cfg)

		Expect(res.Len()).To(Equal(100))
		grid := cfg.Grid()
		for i := 0; i < cfg.Steps; i++ {
			block := res.R[i*cfg.Keep : (i+1)*cfg.Keep]
			for _, r := range block {
				Expect(r).To(Equal(grid[i]))
			}
		}
	})

	It("keeps settled states inside the unit interval for r in [0,4]", func() {
		cfg := analysis.SweepConfig{RMin: 0.5, RMax: 4.0, Steps: 50, X0: 0.5, Iterations: 400, Keep: 40}
		res := analysis.Sweep(cfg)

		for _, x := range res.X {
			Expect(x).To(BeNumerically(">=", 0))
			Expect(x).To(BeNumerically("<=", 1))
		}
	})

	It("collapses the cloud to the fixed point below the first bifurcation", func() {
		cfg := analysis.SweepConfig{RMin: 1.5, RMax: 2.8, Steps: 10, X0: 0.3, Iterations: 2000, Keep: 10}
		res := analysis.Sweep(cfg)

		grid := cfg.Grid()
		for i, r := range grid {
			fp := (r - 1) / r
			for j := 0; j < cfg.Keep; j++ {
				Expect(res.X[i*cfg.Keep+j]).To(BeNumerically("~", fp, 1e-6))
			}
		}
	})

	It("rejects a transient longer than the iteration count", func() {
		cfg := analysis.SweepConfig{RMin: 2.5, RMax: 4, Steps: 10, X0: 0.5, Iterations: 50, Keep: 60}
		Expect(cfg.Validate()).To(MatchError(logistic.ErrTransientBounds))
	})
})

var _ = Describe("Signal", func() {
	It("emits length - window values, all inside [-1, 1]", func() {
		cfg := analysis.SignalConfig{R: 3.9, X0: 0.5, Length: 400, Window: 60}
		res := analysis.Signal(cfg)

		Expect(res.Autocorr).To(HaveLen(340))
		for _, ac := range res.Autocorr {
			Expect(ac).To(BeNumerically(">=", -1))
			Expect(ac).To(BeNumerically("<=", 1))
		}
	})

	It("aligns the variance series with the autocorrelation series", func() {
		cfg := analysis.SignalConfig{R: 3.9, X0: 0.5, Length: 400, Window: 60}
		res := analysis.Signal(cfg)

		Expect(res.Variance).To(HaveLen(len(res.Autocorr)))
		for _, v := range res.Variance {
			Expect(v).To(BeNumerically(">=", 0))
		}
	})

	It("returns the sentinel for a trajectory pinned at a fixed point", func() {
		// Zero is exactly absorbing, so the orbit is constant.
		cfg := analysis.SignalConfig{R: 2.5, X0: 0, Length: 200, Window: 50}
		res := analysis.Signal(cfg)

		for _, ac := range res.Autocorr {
			Expect(ac).To(BeZero())
		}
		Expect(res.AutocorrLag1).To(BeZero())
	})

	It("is a pure function of its configuration", func() {
		cfg := analysis.SignalConfig{R: 3.8, X0: 0.5, Length: 300, Window: 40, Noise: 0.02, NoiseSeed: 11}
		Expect(analysis.Signal(cfg)).To(Equal(analysis.Signal(cfg)))
	})
})
