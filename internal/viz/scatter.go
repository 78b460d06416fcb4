package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/tipatlas/internal/analysis"
)

// Extent is the data-coordinate window mapped onto a canvas.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (e Extent) valid() bool {
	return e.XMax > e.XMin && e.YMax > e.YMin
}

// Plot rasterizes the paired slices onto the canvas. Points outside the
// extent fall off the edge silently.
func (c *Canvas) Plot(ext Extent, xs, ys []float64) {
	if !ext.valid() {
		return
	}
	sw, sh := c.SubWidth(), c.SubHeight()
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	for i := 0; i < n; i++ {
		px := int(float64(sw-1) * (xs[i] - ext.XMin) / (ext.XMax - ext.XMin))
		py := int(float64(sh-1) * (ys[i] - ext.YMin) / (ext.YMax - ext.YMin))
		c.Set(px, sh-1-py)
	}
}

// MarkX draws a vertical marker at data coordinate x.
func (c *Canvas) MarkX(ext Extent, x float64) {
	if !ext.valid() || x < ext.XMin || x > ext.XMax {
		return
	}
	px := int(float64(c.SubWidth()-1) * (x - ext.XMin) / (ext.XMax - ext.XMin))
	c.DrawColumn(px)
}

// SweepExtent is the natural window for a sweep: the parameter range on the
// horizontal axis and the unit interval on the vertical.
func SweepExtent(cfg analysis.SweepConfig) Extent {
	return Extent{XMin: cfg.RMin, XMax: cfg.RMax, YMin: 0, YMax: 1}
}

// RasterizeBifurcation plots a sweep result onto a fresh canvas, with a
// focus marker when focus lies inside the parameter range.
func RasterizeBifurcation(res *analysis.SweepResult, cfg analysis.SweepConfig, width, height int, focus float64) *Canvas {
	c := NewCanvas(width, height)
	ext := SweepExtent(cfg)
	c.Plot(ext, res.R, res.X)
	c.MarkX(ext, focus)
	return c
}

// RenderBifurcation returns the diagram as text with a labeled r axis.
func RenderBifurcation(res *analysis.SweepResult, cfg analysis.SweepConfig, width, height int, focus float64) string {
	c := RasterizeBifurcation(res, cfg, width, height, focus)

	var b strings.Builder
	b.WriteString(c.String())

	left := fmt.Sprintf("%.3f", cfg.RMin)
	right := fmt.Sprintf("%.3f", cfg.RMax)
	pad := width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right + "\n")
	return b.String()
}
