package tui

import (
	"testing"

	"github.com/san-kum/tipatlas/internal/config"
)

func TestRecomputeEstimatorsIndependentOfSweep(t *testing.T) {
	// A coarse sweep must not starve the Lyapunov and regime readouts:
	// they run on their own fixed orbit lengths.
	cfg := config.DefaultConfig()
	cfg.Sweep.Steps = 10
	cfg.Sweep.Iterations = 10
	cfg.Sweep.Keep = 2

	m := NewModel(cfg, nil)
	if m.regime != "chaotic" {
		t.Errorf("r=%.2f: expected chaotic regime, got %q", cfg.Signal.R, m.regime)
	}
	if m.lyap <= 0 {
		t.Errorf("r=%.2f: expected positive lyapunov exponent, got %f", cfg.Signal.R, m.lyap)
	}
}

func TestSetParamClamps(t *testing.T) {
	m := NewModel(config.DefaultConfig(), nil)

	m.setParam("r", 7.5)
	if m.sigCfg.R != 4 {
		t.Errorf("expected r clamped to 4, got %f", m.sigCfg.R)
	}
	m.setParam("window", 1e9)
	if m.sigCfg.Window >= m.sigCfg.Length {
		t.Errorf("window %d should stay below length %d", m.sigCfg.Window, m.sigCfg.Length)
	}
	m.setParam("keep", -5)
	if m.sweepCfg.Keep != 0 {
		t.Errorf("expected keep clamped to 0, got %d", m.sweepCfg.Keep)
	}
}
