package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidScene = errors.New("invalid scene")

// Validate checks a descriptor that did not come from a generator: the kind
// must be registered, primitive ids unique, connections must join known
// primitives and particle progress must lie in [0, 1].
func (s *Scene) Validate() error {
	if _, ok := registry[s.Kind]; !ok {
		return fmt.Errorf("%w: %w %q", ErrInvalidScene, ErrUnknownKind, s.Kind)
	}

	ids := make(map[string]struct{}, len(s.Primitives))
	for _, p := range s.Primitives {
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("%w: duplicate primitive %q", ErrInvalidScene, p.ID)
		}
		ids[p.ID] = struct{}{}
	}
	for _, c := range s.Connections {
		_, from := ids[c.From]
		_, to := ids[c.To]
		if !from || !to {
			return fmt.Errorf("%w: connection %q joins unknown primitives", ErrInvalidScene, c.ID)
		}
	}
	for _, p := range s.Particles {
		if p.Progress < 0 || p.Progress > 1 {
			return fmt.Errorf("%w: particle %q progress %g outside [0, 1]", ErrInvalidScene, p.ID, p.Progress)
		}
		if p.Speed < 0 {
			return fmt.Errorf("%w: particle %q has negative speed", ErrInvalidScene, p.ID)
		}
	}
	return nil
}

// WriteScene dumps s as YAML. Invalid scenes are refused so that every
// written file can be read back.
func WriteScene(s *Scene, path string) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("write scene %s: %w", path, err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode scene %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene %s: %w", path, err)
	}
	return nil
}

// ReadScene loads and validates a descriptor written by WriteScene or by hand.
func ReadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return &s, nil
}
