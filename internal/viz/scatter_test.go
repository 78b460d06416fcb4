package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/tipatlas/internal/analysis"
)

func litCells(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				n++
			}
		}
	}
	return n
}

func TestPlotSetsPixels(t *testing.T) {
	c := NewCanvas(10, 10)
	ext := Extent{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	c.Plot(ext, []float64{0.5}, []float64{0.5})

	if litCells(c) != 1 {
		t.Errorf("expected 1 lit cell, got %d", litCells(c))
	}
}

func TestPlotInvalidExtent(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Plot(Extent{XMin: 1, XMax: 1, YMin: 0, YMax: 1}, []float64{0.5}, []float64{0.5})
	if litCells(c) != 0 {
		t.Error("degenerate extent should plot nothing")
	}
}

func TestMarkXOutsideRange(t *testing.T) {
	c := NewCanvas(10, 10)
	c.MarkX(Extent{XMin: 2.5, XMax: 4, YMin: 0, YMax: 1}, 5.0)
	if litCells(c) != 0 {
		t.Error("marker outside range should draw nothing")
	}
}

func TestRenderBifurcation(t *testing.T) {
	cfg := analysis.SweepConfig{RMin: 2.5, RMax: 4.0, Steps: 50, X0: 0.5, Iterations: 300, Keep: 20}
	res := analysis.Sweep(cfg)

	out := RenderBifurcation(res, cfg, 60, 15, 3.8)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 16 { // 15 canvas rows + axis labels
		t.Fatalf("expected 16 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[15], "2.500") || !strings.Contains(lines[15], "4.000") {
		t.Errorf("axis labels missing: %q", lines[15])
	}
}
