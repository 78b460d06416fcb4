package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/tipatlas/internal/analysis"
	"github.com/san-kum/tipatlas/internal/storage"
	"github.com/san-kum/tipatlas/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 4)
	c.Set(1, 1)

	svg := CanvasToSVG(c, 4.0)
	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML header")
	}
	if strings.Count(svg, "<circle") != 1 {
		t.Errorf("expected 1 dot, got %d", strings.Count(svg, "<circle"))
	}

	if CanvasToSVG(nil, 4.0) != "" {
		t.Error("nil canvas should yield empty string")
	}
}

func TestBifurcationSVG(t *testing.T) {
	cfg := analysis.SweepConfig{RMin: 3.4, RMax: 3.6, Steps: 4, X0: 0.5, Iterations: 200, Keep: 10}
	res := analysis.Sweep(cfg)

	svg := BifurcationSVG(res, cfg, 400, 300, 3.5)
	if !strings.Contains(svg, "<svg") {
		t.Fatal("not an SVG document")
	}
	if strings.Count(svg, "<circle") != res.Len() {
		t.Errorf("expected %d points, got %d", res.Len(), strings.Count(svg, "<circle"))
	}
	if !strings.Contains(svg, "<line") {
		t.Error("expected focus marker line")
	}

	noMarker := BifurcationSVG(res, cfg, 400, 300, 5.0)
	if strings.Contains(noMarker, "<line") {
		t.Error("focus outside range should omit the marker")
	}
}

func TestBrailleBifurcationSVG(t *testing.T) {
	cfg := analysis.SweepConfig{RMin: 3.4, RMax: 3.6, Steps: 4, X0: 0.5, Iterations: 200, Keep: 10}
	res := analysis.Sweep(cfg)

	svg := BrailleBifurcationSVG(res, cfg, 40, 12, 3.5, 4.0)
	if !strings.Contains(svg, "<svg") {
		t.Fatal("not an SVG document")
	}
	if strings.Count(svg, "<circle") == 0 {
		t.Error("expected rasterized dots")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	meta := &storage.RunMetadata{
		ID:        "sweep_1",
		Kind:      storage.KindSweep,
		Timestamp: time.Now(),
		Params:    map[string]float64{"steps": 2},
	}
	points := [][]float64{{3.5, 0.5}, {3.6, 0.6}}

	var buf bytes.Buffer
	if err := JSON(&buf, meta, []string{"r", "x"}, points); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if data.ID != "sweep_1" || data.PointRows != 2 {
		t.Errorf("unexpected payload: %+v", data)
	}
	if len(data.Columns) != 2 || data.Columns[0] != "r" {
		t.Errorf("unexpected columns: %v", data.Columns)
	}
	if data.Points[0][0] == nil || *data.Points[0][0] != 3.5 {
		t.Errorf("unexpected first cell: %v", data.Points[0][0])
	}
}

func TestJSONSignalRun(t *testing.T) {
	st := storage.New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := analysis.SignalConfig{R: 3.8, X0: 0.5, Length: 100, Window: 20}
	runID, err := st.SaveSignal(cfg, analysis.Signal(cfg))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	columns, points, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}

	// The last Window rows have empty autocorr and variance cells, which
	// LoadPoints returns as NaN; the encoder must turn them into null
	// instead of failing.
	var buf bytes.Buffer
	if err := JSON(&buf, meta, columns, points); err != nil {
		t.Fatalf("signal run should encode: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if data.Kind != storage.KindSignal || data.PointRows != 100 {
		t.Errorf("unexpected payload: kind %q, rows %d", data.Kind, data.PointRows)
	}
	if data.Points[0][2] == nil {
		t.Error("expected autocorr value in first row")
	}
	if data.Points[99][2] != nil {
		t.Error("expected null autocorr cell past series end")
	}
}
