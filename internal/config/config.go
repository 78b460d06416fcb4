package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tipatlas/internal/analysis"
)

const (
	DefaultRMin       = 2.5
	DefaultRMax       = 4.0
	DefaultSteps      = 800
	DefaultSweepSeed  = 1e-5
	DefaultIterations = 1000
	DefaultKeep       = 100

	DefaultFocus      = 3.8
	DefaultSignalSeed = 0.5
	DefaultLength     = 200
	DefaultWindow     = 50
	DefaultNoise      = 0.01
)

type Config struct {
	Sweep  SweepConfig  `yaml:"sweep"`
	Signal SignalConfig `yaml:"signal"`
}

type SweepConfig struct {
	RMin       float64 `yaml:"r_min"`
	RMax       float64 `yaml:"r_max"`
	Steps      int     `yaml:"steps"`
	Seed       float64 `yaml:"seed"`
	Iterations int     `yaml:"iterations"`
	Keep       int     `yaml:"keep"`
}

type SignalConfig struct {
	R         float64 `yaml:"r"`
	Seed      float64 `yaml:"seed"`
	Length    int     `yaml:"length"`
	Window    int     `yaml:"window"`
	Noise     float64 `yaml:"noise"`
	NoiseSeed int64   `yaml:"noise_seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Sweep: SweepConfig{
			RMin:       DefaultRMin,
			RMax:       DefaultRMax,
			Steps:      DefaultSteps,
			Seed:       DefaultSweepSeed,
			Iterations: DefaultIterations,
			Keep:       DefaultKeep,
		},
		Signal: SignalConfig{
			R:         DefaultFocus,
			Seed:      DefaultSignalSeed,
			Length:    DefaultLength,
			Window:    DefaultWindow,
			Noise:     DefaultNoise,
			NoiseSeed: 1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SweepConfig converts the file representation into the analysis form.
func (c *Config) SweepConfig() analysis.SweepConfig {
	return analysis.SweepConfig{
		RMin:       c.Sweep.RMin,
		RMax:       c.Sweep.RMax,
		Steps:      c.Sweep.Steps,
		X0:         c.Sweep.Seed,
		Iterations: c.Sweep.Iterations,
		Keep:       c.Sweep.Keep,
	}
}

// SignalConfig converts the file representation into the analysis form.
func (c *Config) SignalConfig() analysis.SignalConfig {
	return analysis.SignalConfig{
		R:         c.Signal.R,
		X0:        c.Signal.Seed,
		Length:    c.Signal.Length,
		Window:    c.Signal.Window,
		Noise:     c.Signal.Noise,
		NoiseSeed: c.Signal.NoiseSeed,
	}
}

// Validate checks both sections.
func (c *Config) Validate() error {
	if err := c.SweepConfig().Validate(); err != nil {
		return err
	}
	return c.SignalConfig().Validate()
}
