package storage

import (
	"math"
	"testing"

	"github.com/san-kum/tipatlas/internal/analysis"
)

func TestSaveLoadSweep(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := analysis.SweepConfig{RMin: 3.4, RMax: 3.6, Steps: 3, X0: 0.5, Iterations: 200, Keep: 5}
	res := analysis.Sweep(cfg)

	runID, err := st.SaveSweep(cfg, res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Kind != KindSweep {
		t.Errorf("expected kind %q, got %q", KindSweep, meta.Kind)
	}
	if meta.Params["steps"] != 3 {
		t.Errorf("expected 3 steps, got %v", meta.Params["steps"])
	}

	header, points, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}
	if len(header) != 2 || header[0] != "r" || header[1] != "x" {
		t.Errorf("unexpected header: %v", header)
	}
	if len(points) != 15 {
		t.Errorf("expected 15 rows, got %d", len(points))
	}
}

func TestSaveLoadSignal(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := analysis.SignalConfig{R: 3.8, X0: 0.5, Length: 100, Window: 20}
	res := analysis.Signal(cfg)

	runID, err := st.SaveSignal(cfg, res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, points, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}
	if len(points) != 100 {
		t.Fatalf("expected 100 rows, got %d", len(points))
	}

	// Rolling series has length 80; later rows leave those cells empty.
	if math.IsNaN(points[0][2]) {
		t.Error("expected autocorr value in first row")
	}
	if !math.IsNaN(points[99][2]) {
		t.Error("expected empty autocorr cell past series end")
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}

	cfg := analysis.SweepConfig{RMin: 3.4, RMax: 3.6, Steps: 2, X0: 0.5, Iterations: 100, Keep: 2}
	if _, err := st.SaveSweep(cfg, analysis.Sweep(cfg)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/nope")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if runs != nil {
		t.Errorf("expected nil runs, got %v", runs)
	}
}
