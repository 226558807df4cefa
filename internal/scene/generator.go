package scene

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Palette holds the symbolic colors the front end maps onto its theme.
var Palette = []string{"primary", "secondary", "accent", "info", "success", "warning"}

// ErrUnknownKind is returned for a kind with no registered generator.
var ErrUnknownKind = errors.New("unknown scene kind")

type buildFunc func(r Rand, p Params) *Scene

type entry struct {
	defaults Params
	build    buildFunc
}

var registry = map[string]entry{
	"blockchain": {
		defaults: Params{Count: 8, Radius: 4, SpeedMin: 0.5, SpeedMax: 1.5},
		build:    buildBlockchain,
	},
	"validators": {
		defaults: Params{Count: 12, Radius: 5, Jitter: 0.4, SpeedMin: 0.5, SpeedMax: 1.2},
		build:    buildValidators,
	},
	"p2p-exchange": {
		defaults: Params{Count: 6, Radius: 4, Particles: 12, SpeedMin: ParticleSpeedMin, SpeedMax: ParticleSpeedMax},
		build:    buildExchange,
	},
	"dex": {
		defaults: Params{Count: 6, Columns: 3, Spacing: 3, Particles: 20, SpeedMin: ParticleSpeedMin, SpeedMax: ParticleSpeedMax},
		build:    buildDEX,
	},
	"wallet": {
		defaults: Params{Count: 10, Radius: 3, Jitter: 0.5, SpeedMin: 0.3, SpeedMax: 0.8},
		build:    buildWallet,
	},
	"stablecoin": {
		defaults: Params{Count: 16, Radius: 2, SpeedMin: 0.2, SpeedMax: 0.6},
		build:    buildStablecoin,
	},
	"social-media": {
		defaults: Params{Count: 24, Columns: 6, Spacing: 1.5, Jitter: 0.3, SpeedMin: 0.5, SpeedMax: 2},
		build:    buildSocial,
	},
	"digital-identity": {
		defaults: Params{Count: 5, Radius: 0.8, SpeedMin: 0.2, SpeedMax: 0.9},
		build:    buildIdentity,
	},
}

// Kinds lists every registered scene kind in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Generator builds scenes of one kind.
type Generator struct {
	kind   string
	params Params
	build  buildFunc
}

// NewGenerator creates a generator for kind, applying any override found in presets.
func NewGenerator(kind string, presets Presets) (*Generator, error) {
	e, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return &Generator{
		kind:   kind,
		params: presets[kind].Merge(e.defaults),
		build:  e.build,
	}, nil
}

func (g *Generator) Kind() string { return g.kind }

func (g *Generator) Params() Params { return g.params }

// Generate builds a fresh scene from r. It cannot fail.
func (g *Generator) Generate(r Rand) *Scene {
	s := g.build(r, g.params)
	s.Kind = g.kind
	return s
}

// Build generates a scene for kind with a seeded source. A zero seed is
// replaced by the clock and recorded so the scene can be regenerated.
func Build(kind string, seed int64, presets Presets) (*Scene, error) {
	g, err := NewGenerator(kind, presets)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := g.Generate(NewRand(seed))
	s.Seed = seed
	return s, nil
}

func particles(r Rand, p Params, anchors []Vec3) []Particle {
	out := make([]Particle, p.Particles)
	for i := range out {
		src, dst := RandomPair(r, anchors)
		out[i] = Particle{
			ID:       fmt.Sprintf("tx-%d", i),
			Progress: r.Float64(),
			Source:   src,
			Dest:     dst,
			Speed:    Between(r, p.SpeedMin, p.SpeedMax),
			Color:    Pick(r, Palette),
		}
	}
	return out
}

func link(a, b Primitive) Connection {
	return Connection{
		ID:    a.ID + ":" + b.ID,
		From:  a.ID,
		To:    b.ID,
		Start: a.Position,
		End:   b.Position,
	}
}
