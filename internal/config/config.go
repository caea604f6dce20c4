package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/engine"
	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
)

const (
	DefaultPattern = "star"
	DefaultDensity = engine.DefaultDensity
	DefaultTick    = 100 * time.Millisecond
	DefaultTheme   = "phosphor"
	DefaultScale   = 8
)

var (
	ErrDensityRange   = errors.New("config: density out of range [0,100]")
	ErrUnknownPattern = errors.New("config: unknown pattern")
	ErrTick           = errors.New("config: tick must be positive")
	ErrScale          = errors.New("config: scale must be at least 1")
	ErrUnknownPreset  = errors.New("config: unknown preset")
)

// Config holds startup settings. It is read once; runtime changes to the
// pattern or density are never written back.
type Config struct {
	Pattern string        `yaml:"pattern"`
	Density int           `yaml:"density"`
	Tick    time.Duration `yaml:"tick"`
	Theme   string        `yaml:"theme"`
	Scale   int           `yaml:"scale"`
	Keys    KeyConfig     `yaml:"keys"`
}

func DefaultConfig() *Config {
	return &Config{
		Pattern: DefaultPattern,
		Density: DefaultDensity,
		Tick:    DefaultTick,
		Theme:   DefaultTheme,
		Scale:   DefaultScale,
		Keys:    DefaultKeys(),
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, ok := patterns.IndexOf(c.Pattern); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, c.Pattern)
	}
	if c.Density < 0 || c.Density > engine.MaxDensity {
		return fmt.Errorf("%w: %d", ErrDensityRange, c.Density)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: %v", ErrTick, c.Tick)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: %d", ErrScale, c.Scale)
	}
	return nil
}

// PatternIndex returns the selection index of the configured pattern.
func (c *Config) PatternIndex() int {
	idx, _ := patterns.IndexOf(c.Pattern)
	return idx
}

// EngineOptions converts the config into engine options.
func (c *Config) EngineOptions(src *patterns.Source) engine.Options {
	density := c.Density
	return engine.Options{
		Pattern: c.PatternIndex(),
		Density: &density,
		Source:  src,
	}
}
