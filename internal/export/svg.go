package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/tipatlas/internal/analysis"
	"github.com/san-kum/tipatlas/internal/viz"
)

// Theme colors matching the dashboard.
const (
	svgBackground = "#0a0a12"
	svgPoint      = "#00cc96"
	svgMarker     = "#ff4b4b"
)

// CanvasToSVG converts a braille canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, svgBackground, svgPoint))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// BrailleBifurcationSVG renders a sweep the way the terminal shows it: the
// point cloud is rasterized onto a cols x rows braille canvas first and the
// lit sub-pixels become dots of scale px. The export-svg --braille mode and
// the dashboard share this path with the on-screen diagram.
func BrailleBifurcationSVG(res *analysis.SweepResult, cfg analysis.SweepConfig, cols, rows int, focus, scale float64) string {
	return CanvasToSVG(viz.RasterizeBifurcation(res, cfg, cols, rows, focus), scale)
}

// BifurcationSVG renders a sweep point cloud directly at full resolution,
// with an optional focus marker line. Pass a focus outside [RMin, RMax] to
// omit the marker.
func BifurcationSVG(res *analysis.SweepResult, cfg analysis.SweepConfig, width, height int, focus float64) string {
	if res.Len() == 0 || width <= 0 || height <= 0 {
		return ""
	}

	rSpan := cfg.RMax - cfg.RMin
	if rSpan <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s" fill-opacity="0.35">
`, width, height, width, height, svgBackground, svgPoint))

	for i := range res.R {
		cx := float64(width-1) * (res.R[i] - cfg.RMin) / rSpan
		cy := float64(height-1) * (1 - res.X[i])
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="0.8"/>
`, cx, cy))
	}
	sb.WriteString("</g>\n")

	if focus >= cfg.RMin && focus <= cfg.RMax {
		mx := float64(width-1) * (focus - cfg.RMin) / rSpan
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="%s" stroke-width="2" stroke-opacity="0.8"/>
`, mx, mx, height, svgMarker))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
