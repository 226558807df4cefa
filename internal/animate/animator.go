package animate

import (
	"github.com/megapayer/site/internal/scene"
)

// Animator drives one mounted scene. Transforms are recomputed from the
// immutable primitives each Update; particles advance in place.
type Animator struct {
	scene   *scene.Scene
	chain   Chain
	rng     scene.Rand
	anchors []scene.Vec3

	index      map[string]int
	transforms []Transform
	targets    []Target

	particleIndex   map[string]int
	particleTargets []Target
}

// New creates an animator for s. r feeds particle resets.
func New(s *scene.Scene, r scene.Rand) *Animator {
	a := &Animator{
		scene:           s,
		chain:           ChainFor(s.Kind),
		rng:             r,
		anchors:         s.Anchors(),
		index:           make(map[string]int, len(s.Primitives)),
		transforms:      make([]Transform, len(s.Primitives)),
		targets:         make([]Target, len(s.Primitives)),
		particleIndex:   make(map[string]int, len(s.Particles)),
		particleTargets: make([]Target, len(s.Particles)),
	}
	for i, p := range s.Primitives {
		a.index[p.ID] = i
		a.transforms[i] = Rest(p)
	}
	for i, p := range s.Particles {
		a.particleIndex[p.ID] = i
	}
	return a
}

// WithChain replaces the effect chain picked for the scene kind.
func (a *Animator) WithChain(c Chain) *Animator {
	a.chain = c
	return a
}

// Attach binds a render target to a primitive or particle id. It reports
// false when the id is not part of the scene.
func (a *Animator) Attach(id string, t Target) bool {
	if i, ok := a.index[id]; ok {
		a.targets[i] = t
		return true
	}
	if i, ok := a.particleIndex[id]; ok {
		a.particleTargets[i] = t
		return true
	}
	return false
}

// Detach unbinds whatever target is attached to id.
func (a *Animator) Detach(id string) {
	a.Attach(id, nil)
}

// Update is the per-frame callback. Unattached ids are computed but not
// pushed anywhere.
func (a *Animator) Update(elapsed float64) {
	a.pose(elapsed)
	a.advance()
}

func (a *Animator) pose(elapsed float64) {
	for i, p := range a.scene.Primitives {
		a.transforms[i] = a.chain.Apply(p, elapsed)
		if t := a.targets[i]; t != nil {
			t.SetTransform(a.transforms[i])
		}
	}
}

func (a *Animator) advance() {
	for i := range a.scene.Particles {
		p := &a.scene.Particles[i]
		AdvanceParticle(p, a.rng, a.anchors)
		if t := a.particleTargets[i]; t != nil {
			t.SetTransform(Transform{Position: p.Position(), Scale: 1, Opacity: 1})
		}
	}
}

// Transform returns the last computed transform for a primitive.
func (a *Animator) Transform(id string) (Transform, bool) {
	i, ok := a.index[id]
	if !ok {
		return Transform{}, false
	}
	return a.transforms[i], true
}

// ParticleState is a particle's position in a frame snapshot.
type ParticleState struct {
	ID       string     `json:"id"`
	Progress float64    `json:"progress"`
	Position scene.Vec3 `json:"position"`
}

// Frame is a serializable snapshot of the scene at one instant.
type Frame struct {
	Kind       string               `json:"kind"`
	Seed       int64                `json:"seed"`
	Elapsed    float64              `json:"elapsed"`
	Transforms map[string]Transform `json:"transforms"`
	Particles  []ParticleState      `json:"particles,omitempty"`
}

// Snapshot copies the current state into a Frame.
func (a *Animator) Snapshot(elapsed float64) Frame {
	f := Frame{
		Kind:       a.scene.Kind,
		Seed:       a.scene.Seed,
		Elapsed:    elapsed,
		Transforms: make(map[string]Transform, len(a.transforms)),
	}
	for i, p := range a.scene.Primitives {
		f.Transforms[p.ID] = a.transforms[i]
	}
	for _, p := range a.scene.Particles {
		f.Particles = append(f.Particles, ParticleState{ID: p.ID, Progress: p.Progress, Position: p.Position()})
	}
	return f
}

// Replay runs the update loop from zero to elapsed at fps and returns the
// final frame. With a seeded scene and source the result is deterministic.
func (a *Animator) Replay(elapsed float64, fps int) Frame {
	if fps <= 0 {
		fps = DefaultFPS
	}
	ticks := int(elapsed * float64(fps))
	for i := 1; i <= ticks; i++ {
		a.Update(float64(i) / float64(fps))
	}
	a.pose(elapsed)
	return a.Snapshot(elapsed)
}
