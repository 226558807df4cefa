package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params tunes a generator. Zero fields fall back to the kind's defaults.
type Params struct {
	Count     int     `yaml:"count"`
	Radius    float64 `yaml:"radius"`
	Spacing   float64 `yaml:"spacing"`
	Columns   int     `yaml:"columns"`
	Jitter    float64 `yaml:"jitter"`
	Particles int     `yaml:"particles"`
	SpeedMin  float64 `yaml:"speed_min"`
	SpeedMax  float64 `yaml:"speed_max"`
}

// Presets maps a scene kind to its parameter overrides.
type Presets map[string]Params

// Particle speed bounds, in progress per tick. At 60 FPS a 0.01 step
// crosses its path in under two seconds.
const (
	ParticleSpeedMin = 0.005
	ParticleSpeedMax = 0.015
)

// Merge returns p with every zero field filled from def.
func (p Params) Merge(def Params) Params {
	if p.Count == 0 {
		p.Count = def.Count
	}
	if p.Radius == 0 {
		p.Radius = def.Radius
	}
	if p.Spacing == 0 {
		p.Spacing = def.Spacing
	}
	if p.Columns == 0 {
		p.Columns = def.Columns
	}
	if p.Jitter == 0 {
		p.Jitter = def.Jitter
	}
	if p.Particles == 0 {
		p.Particles = def.Particles
	}
	if p.SpeedMin == 0 {
		p.SpeedMin = def.SpeedMin
	}
	if p.SpeedMax == 0 {
		p.SpeedMax = def.SpeedMax
	}
	return p
}

// LoadPresets reads parameter overrides from a YAML file keyed by kind.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var presets Presets
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}

	for kind, p := range presets {
		if _, ok := registry[kind]; !ok {
			return nil, fmt.Errorf("presets %s: %w %q", path, ErrUnknownKind, kind)
		}
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("presets %s: %s: %w", path, kind, err)
		}
	}
	return presets, nil
}

var ErrInvalidParams = errors.New("invalid scene params")

// validate rejects values the generators cannot size slices or ranges from.
func (p Params) validate() error {
	switch {
	case p.Count < 0:
		return fmt.Errorf("%w: negative count %d", ErrInvalidParams, p.Count)
	case p.Particles < 0:
		return fmt.Errorf("%w: negative particles %d", ErrInvalidParams, p.Particles)
	case p.Columns < 0:
		return fmt.Errorf("%w: negative columns %d", ErrInvalidParams, p.Columns)
	case p.Radius < 0, p.Spacing < 0, p.Jitter < 0:
		return fmt.Errorf("%w: negative dimension", ErrInvalidParams)
	case p.SpeedMin < 0, p.SpeedMax < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalidParams)
	case p.SpeedMin != 0 && p.SpeedMax != 0 && p.SpeedMin > p.SpeedMax:
		return fmt.Errorf("%w: speed_min %g above speed_max %g", ErrInvalidParams, p.SpeedMin, p.SpeedMax)
	}
	return nil
}
