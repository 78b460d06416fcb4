package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sweep.RMin >= cfg.Sweep.RMax {
		t.Error("sweep range should be increasing")
	}
	if cfg.Signal.Window >= cfg.Signal.Length {
		t.Error("window should be shorter than trajectory")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("chaos")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Signal.R != 3.9 {
		t.Errorf("expected focus 3.9, got %f", cfg.Signal.R)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i] < presets[i-1] {
			t.Fatal("presets not sorted")
		}
	}
	for _, name := range presets {
		if cfg := GetPreset(name); cfg == nil {
			t.Errorf("listed preset %q not retrievable", name)
		}
		if err := Presets[name].Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Sweep.Steps = 123
	cfg.Signal.R = 3.77

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Sweep.Steps != 123 {
		t.Errorf("expected steps 123, got %d", loaded.Sweep.Steps)
	}
	if loaded.Signal.R != 3.77 {
		t.Errorf("expected r 3.77, got %f", loaded.Signal.R)
	}
}

func TestAnalysisConversion(t *testing.T) {
	cfg := DefaultConfig()

	sweep := cfg.SweepConfig()
	if sweep.RMin != cfg.Sweep.RMin || sweep.Keep != cfg.Sweep.Keep {
		t.Error("sweep conversion lost fields")
	}

	sig := cfg.SignalConfig()
	if sig.R != cfg.Signal.R || sig.Window != cfg.Signal.Window {
		t.Error("signal conversion lost fields")
	}
}
