package config

import "sort"

// Presets are named regions of the bifurcation diagram. Each zooms the sweep
// onto the regime of interest and focuses the signal analysis on a
// representative growth rate.
var Presets = map[string]*Config{
	"stable": {
		Sweep:  SweepConfig{RMin: 0.5, RMax: 3.0, Steps: 600, Seed: DefaultSweepSeed, Iterations: 1000, Keep: 100},
		Signal: SignalConfig{R: 2.6, Seed: 0.5, Length: 200, Window: 50, Noise: 0.01, NoiseSeed: 1},
	},
	"period2": {
		Sweep:  SweepConfig{RMin: 2.8, RMax: 3.5, Steps: 600, Seed: DefaultSweepSeed, Iterations: 1000, Keep: 100},
		Signal: SignalConfig{R: 3.2, Seed: 0.5, Length: 200, Window: 50, Noise: 0.01, NoiseSeed: 1},
	},
	"period4": {
		Sweep:  SweepConfig{RMin: 3.4, RMax: 3.6, Steps: 600, Seed: DefaultSweepSeed, Iterations: 1000, Keep: 100},
		Signal: SignalConfig{R: 3.5, Seed: 0.5, Length: 200, Window: 50, Noise: 0.01, NoiseSeed: 1},
	},
	"onset": {
		Sweep:  SweepConfig{RMin: 3.5, RMax: 3.65, Steps: 800, Seed: DefaultSweepSeed, Iterations: 2000, Keep: 200},
		Signal: SignalConfig{R: 3.57, Seed: 0.5, Length: 400, Window: 80, Noise: 0.01, NoiseSeed: 1},
	},
	"chaos": {
		Sweep:  SweepConfig{RMin: 3.5, RMax: 4.0, Steps: 800, Seed: DefaultSweepSeed, Iterations: 1000, Keep: 100},
		Signal: SignalConfig{R: 3.9, Seed: 0.5, Length: 200, Window: 50, Noise: 0.01, NoiseSeed: 1},
	},
	"edge": {
		Sweep:  SweepConfig{RMin: 3.9, RMax: 4.0, Steps: 800, Seed: DefaultSweepSeed, Iterations: 1000, Keep: 100},
		Signal: SignalConfig{R: 3.99, Seed: 0.5, Length: 1000, Window: 50, Noise: 0.0, NoiseSeed: 1},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
