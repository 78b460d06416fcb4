package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00cc96"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	ActiveParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	// Alert ladder used for the autocorrelation card: calm, warning, critical.
	calmStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00cc96"))
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffa15a"))
	criticalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4b4b"))
)

// Thresholds at which rising autocorrelation is flagged as an approaching
// transition.
const (
	WarnAutocorr     = 0.7
	CriticalAutocorr = 0.9
)

// AutocorrStyle returns the alert style for an autocorrelation value.
func AutocorrStyle(ac float64) lipgloss.Style {
	switch {
	case ac > CriticalAutocorr:
		return criticalStyle
	case ac > WarnAutocorr:
		return warnStyle
	default:
		return calmStyle
	}
}

// MetricCard renders a small labeled value box.
func MetricCard(title, value string, style lipgloss.Style) string {
	content := Subtle.Render(title) + "\n" + style.Render(value)
	return PanelStyle.Render(content)
}

// MeterBar renders a horizontal fill bar for a value in [0, 1].
func MeterBar(frac float64, width int) string {
	if frac < 0 {
		frac = -frac
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Sparkline renders values as a compact block-character strip.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

// FormatMetric renders a label/value pair in the stats column style.
func FormatMetric(label string, value float64) string {
	return LabelStyle.Render(label) + ValueStyle.Render(fmt.Sprintf("%.4f", value))
}
